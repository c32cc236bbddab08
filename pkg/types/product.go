package types

// Product 商品目錄單筆 SKU，啟動時自 CSV 載入後唯讀。
// 規格欄位全部選填，缺值為空字串/false/空列表。
type Product struct {
	SKU                string   `json:"sku"`
	Name               string   `json:"name"`
	ArmType            string   `json:"arm_type"`
	SizeMaxInch        string   `json:"size_max_inch"`
	VesaOptions        []string `json:"vesa_options"`
	WeightPerArmKg     string   `json:"weight_per_arm_kg"`
	DeskThicknessMm    string   `json:"desk_thickness_mm"`
	Rotation           string   `json:"rotation"`
	Tilt               string   `json:"tilt"`
	Swivel             string   `json:"swivel"`
	USBHub             bool     `json:"usb_hub"`
	CompatibilityNotes string   `json:"compatibility_notes"`
	URL                string   `json:"url"`
	ImageURL           string   `json:"image_url"`
	ReachMm            string   `json:"reach_mm"`
	TraySizeInch       string   `json:"tray_size_inch"`
	Includes           []string `json:"includes"`
}

// ProductMatch 產品檢索結果中回傳給呼叫端的單筆資料。
type ProductMatch struct {
	SKU                string   `json:"sku"`
	Name               string   `json:"name"`
	ArmType            string   `json:"arm_type"`
	MaxSize            string   `json:"max_size"`
	VesaOptions        []string `json:"vesa_options"`
	WeightCapacity     string   `json:"weight_capacity"`
	DeskThickness      string   `json:"desk_thickness"`
	CompatibilityNotes string   `json:"compatibility_notes"`
	URL                string   `json:"url"`
	ImageURL           string   `json:"image_url"`
	Includes           []string `json:"includes"`
	RelevanceScore     float64  `json:"relevance_score"`
}

type ProductSearchResult struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	Products   []ProductMatch `json:"products"`
	TotalFound int            `json:"total_found,omitempty"`
	Error      string         `json:"error,omitempty"`
}
