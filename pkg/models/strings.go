package models

// Strings is the table of user-visible text
type Strings struct {
	All              string `yaml:"all" json:"all"`
	Uncategorized    string `yaml:"uncategorized" json:"uncategorized"`
	UntitledName     string `yaml:"untitled_name" json:"untitledName"`
	NoDescription    string `yaml:"no_description" json:"noDescription"`
	Loading          string `yaml:"loading" json:"loading"`
	EmptyAll         string `yaml:"empty_all" json:"emptyAll"`
	EmptyCategory    string `yaml:"empty_category" json:"emptyCategory"`
	LoadFailed       string `yaml:"load_failed" json:"loadFailed"`
	LoadError        string `yaml:"load_error" json:"loadError"`
	VideoUnsupported string `yaml:"video_unsupported" json:"videoUnsupported"`
	Close            string `yaml:"close" json:"close"`
}

// DefaultStrings returns the Traditional Chinese string table
func DefaultStrings() Strings {
	return Strings{
		All:              "全部",
		Uncategorized:    "未分類",
		UntitledName:     "未命名作品",
		NoDescription:    "暫無作品描述。",
		Loading:          "載入中…",
		EmptyAll:         "目前還沒有任何作品。",
		EmptyCategory:    "這個分類目前沒有作品。",
		LoadFailed:       "載入失敗",
		LoadError:        "無法載入作品資料，請稍後再試。",
		VideoUnsupported: "你的瀏覽器不支援影片播放",
		Close:            "關閉",
	}
}

// Merge returns s with every non-empty field of o replacing its counterpart
func (s Strings) Merge(o Strings) Strings {
	pick := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	pick(&s.All, o.All)
	pick(&s.Uncategorized, o.Uncategorized)
	pick(&s.UntitledName, o.UntitledName)
	pick(&s.NoDescription, o.NoDescription)
	pick(&s.Loading, o.Loading)
	pick(&s.EmptyAll, o.EmptyAll)
	pick(&s.EmptyCategory, o.EmptyCategory)
	pick(&s.LoadFailed, o.LoadFailed)
	pick(&s.LoadError, o.LoadError)
	pick(&s.VideoUnsupported, o.VideoUnsupported)
	pick(&s.Close, o.Close)
	return s
}
