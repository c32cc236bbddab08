package types

// KnowledgeItem 知識庫單筆 FAQ 記錄，啟動時自 CSV 載入後唯讀。
// 選填欄位缺值時一律為空字串，不存在 null 狀態。
type KnowledgeItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	URLLabel string   `json:"url_label"`
	URLHref  string   `json:"url_href"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
}

// KnowledgeMatch 知識庫檢索結果中回傳給呼叫端的單筆資料。
type KnowledgeMatch struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	RelevanceScore float64  `json:"relevance_score"`
	URL            string   `json:"url"`
	URLLabel       string   `json:"url_label"`
	ImageURL       string   `json:"image_url"`
	Tags           []string `json:"tags"`
}

type PrimarySource struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	URLLabel string `json:"url_label"`
}

type KnowledgeSearchResult struct {
	Success       bool             `json:"success"`
	Message       string           `json:"message"`
	Results       []KnowledgeMatch `json:"results"`
	PrimarySource *PrimarySource   `json:"primary_source,omitempty"`
	Error         string           `json:"error,omitempty"`
}
