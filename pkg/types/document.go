package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/pgvector/pgvector-go"
)

// DocumentKind 檢索集合類型，knowledge 與 products 各自獨立，
// 避免跨域誤検（產品查詢不應命中 FAQ，反之亦然）。
type DocumentKind string

const (
	DOCUMENT_KIND_KNOWLEDGE DocumentKind = "knowledge"
	DOCUMENT_KIND_PRODUCT   DocumentKind = "products"
)

func (k DocumentKind) String() string {
	return string(k)
}

// DocumentMeta 檢索文件的反正規化欄位，所有值皆為字串，
// 列表欄位以 JSON 編碼保存。
type DocumentMeta map[string]string

func (m DocumentMeta) SetList(key string, values []string) {
	raw, _ := json.Marshal(values)
	m[key] = string(raw)
}

// Value 以 jsonb 形式寫入 postgres。
func (m DocumentMeta) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *DocumentMeta) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = DocumentMeta{}
		return nil
	}
	return fmt.Errorf("unsupported meta column type %T", src)
}

func (m DocumentMeta) GetList(key string) []string {
	values := []string{}
	if raw := m[key]; raw != "" {
		_ = json.Unmarshal([]byte(raw), &values)
	}
	return values
}

// Document 檢索集合內的一筆資料，natural key 為知識的 id 或產品的 sku。
// Content 必須能由來源記錄決定性地重建，重複灌入才具冪等性。
type Document struct {
	ID         string          `json:"id" db:"id"`
	Collection DocumentKind    `json:"collection" db:"collection"`
	Content    string          `json:"content" db:"content"`
	Meta       DocumentMeta    `json:"meta" db:"meta"`
	Embedding  pgvector.Vector `json:"-" db:"embedding"`
	CreatedAt  int64           `json:"created_at" db:"created_at"`
}

// SearchResult 單筆最近鄰結果。Distance 為 pgvector 的 cosine distance，
// 值域 [0,2]，越小越相關。
type SearchResult struct {
	ID         string       `json:"id" db:"id"`
	Collection DocumentKind `json:"collection" db:"collection"`
	Content    string       `json:"content" db:"content"`
	Meta       DocumentMeta `json:"meta" db:"meta"`
	Distance   float64      `json:"distance" db:"distance"`
}

// RelevanceScore 以 1 - distance 換算相關度，cosine distance 超出 1 時
// 夾在 0，避免出現負相關度。
func (r SearchResult) RelevanceScore() float64 {
	score := 1 - r.Distance
	if score < 0 {
		return 0
	}
	return score
}

const (
	META_KEY_ID            = "id"
	META_KEY_TYPE          = "type"
	META_KEY_TITLE         = "title"
	META_KEY_URL_LABEL     = "url_label"
	META_KEY_URL_HREF      = "url_href"
	META_KEY_IMAGE_URL     = "image_url"
	META_KEY_TAGS          = "tags"
	META_KEY_SKU           = "sku"
	META_KEY_NAME          = "name"
	META_KEY_ARM_TYPE      = "arm_type"
	META_KEY_SIZE_MAX_INCH = "size_max_inch"
	META_KEY_VESA_OPTIONS  = "vesa_options"
	META_KEY_WEIGHT_KG     = "weight_per_arm_kg"
	META_KEY_DESK_MM       = "desk_thickness_mm"
	META_KEY_NOTES         = "compatibility_notes"
	META_KEY_URL           = "url"
	META_KEY_INCLUDES      = "includes"
)

// KnowledgeMeta 構建知識文件的反正規化欄位。
func KnowledgeMeta(item KnowledgeItem) DocumentMeta {
	meta := DocumentMeta{
		META_KEY_ID:        item.ID,
		META_KEY_TITLE:     item.Title,
		META_KEY_URL_LABEL: item.URLLabel,
		META_KEY_URL_HREF:  item.URLHref,
		META_KEY_IMAGE_URL: item.ImageURL,
		META_KEY_TYPE:      DOCUMENT_KIND_KNOWLEDGE.String(),
	}
	meta.SetList(META_KEY_TAGS, item.Tags)
	return meta
}

// ProductMeta 構建產品文件的反正規化欄位。
func ProductMeta(product Product) DocumentMeta {
	meta := DocumentMeta{
		META_KEY_SKU:           product.SKU,
		META_KEY_NAME:          product.Name,
		META_KEY_ARM_TYPE:      product.ArmType,
		META_KEY_SIZE_MAX_INCH: product.SizeMaxInch,
		META_KEY_WEIGHT_KG:     product.WeightPerArmKg,
		META_KEY_DESK_MM:       product.DeskThicknessMm,
		META_KEY_NOTES:         product.CompatibilityNotes,
		META_KEY_URL:           product.URL,
		META_KEY_IMAGE_URL:     product.ImageURL,
		META_KEY_TYPE:          DOCUMENT_KIND_PRODUCT.String(),
	}
	meta.SetList(META_KEY_VESA_OPTIONS, product.VesaOptions)
	meta.SetList(META_KEY_INCLUDES, product.Includes)
	return meta
}

// KnowledgeMatchFromResult 把檢索結果還原為知識回應資料。
func KnowledgeMatchFromResult(r SearchResult) KnowledgeMatch {
	return KnowledgeMatch{
		ID:             r.Meta[META_KEY_ID],
		Title:          r.Meta[META_KEY_TITLE],
		RelevanceScore: r.RelevanceScore(),
		URL:            r.Meta[META_KEY_URL_HREF],
		URLLabel:       r.Meta[META_KEY_URL_LABEL],
		ImageURL:       r.Meta[META_KEY_IMAGE_URL],
		Tags:           r.Meta.GetList(META_KEY_TAGS),
	}
}

// ProductMatchFromResult 把檢索結果還原為產品回應資料。
func ProductMatchFromResult(r SearchResult) ProductMatch {
	return ProductMatch{
		SKU:                r.Meta[META_KEY_SKU],
		Name:               r.Meta[META_KEY_NAME],
		ArmType:            r.Meta[META_KEY_ARM_TYPE],
		MaxSize:            r.Meta[META_KEY_SIZE_MAX_INCH],
		VesaOptions:        r.Meta.GetList(META_KEY_VESA_OPTIONS),
		WeightCapacity:     r.Meta[META_KEY_WEIGHT_KG],
		DeskThickness:      r.Meta[META_KEY_DESK_MM],
		CompatibilityNotes: r.Meta[META_KEY_NOTES],
		URL:                r.Meta[META_KEY_URL],
		ImageURL:           r.Meta[META_KEY_IMAGE_URL],
		Includes:           r.Meta.GetList(META_KEY_INCLUDES),
		RelevanceScore:     r.RelevanceScore(),
	}
}
