package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/ChungNYCU/jtcg-assignment/pkg/types"
)

// ParseProducts 解析商品目錄 CSV。規格欄位全部選填，
// 缺值對應空字串/false/空列表。
func ParseProducts(r io.Reader) ([]types.Product, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("parse products: %w", err)
	}

	products := make([]types.Product, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)

		sku := row.Get("sku")
		if sku == "" {
			return nil, fmt.Errorf("parse products: row %d missing required column sku", i+1)
		}

		products = append(products, types.Product{
			SKU:                sku,
			Name:               row.Get("name"),
			ArmType:            row.Get("specs/arm_type"),
			SizeMaxInch:        row.Get("specs/size_max_inch"),
			VesaOptions:        row.CollectPrefix("specs/vesa/"),
			WeightPerArmKg:     row.Get("specs/weight_per_arm_kg"),
			DeskThicknessMm:    row.Get("specs/desk_thickness_mm"),
			Rotation:           row.Get("specs/rotation"),
			Tilt:               row.Get("specs/tilt"),
			Swivel:             row.Get("specs/swivel"),
			USBHub:             parseLooseBool(row.Get("specs/usb_hub")),
			CompatibilityNotes: row.Get("compatibility_notes"),
			URL:                row.Get("url"),
			ImageURL:           row.Get("images/0"),
			ReachMm:            row.Get("specs/reach_mm"),
			TraySizeInch:       row.Get("specs/tray_size_inch"),
			Includes:           row.CollectPrefix("specs/includes/"),
		})
	}

	return products, nil
}

func LoadProducts(path string) ([]types.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load products %s: %w", path, err)
	}
	defer f.Close()

	return ParseProducts(f)
}
