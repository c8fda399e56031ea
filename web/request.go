package web

type Query struct {
	Query    string `json:"q" query:"q" validate:"required"`
	Language string `json:"l" query:"l"`
	Key      string `json:"k" query:"k"`
}

type BatchRequest struct {
	Words   []string `json:"words"`
	Key     string   `json:"key"`
	Workers int      `json:"workers"`
}

type VerifyRequest struct {
	WordsFile    string `json:"words_file"`
	ExpectedFile string `json:"expected_file"`
	Key          string `json:"key"`
	Workers      int    `json:"workers"`
}

type Options struct {
	Key          string `json:"key"`
	CacheSize    int    `json:"cache_size"`
	DisableCache bool   `json:"disable_cache"`
}
