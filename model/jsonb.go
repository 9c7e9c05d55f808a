package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

func jsonbValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonbScan(dest any, src any) error {
	switch data := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, dest)
	case string:
		return json.Unmarshal([]byte(data), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// OrderItems lưu dạng jsonb trong postgres
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) { return jsonbValue(items) }
func (items *OrderItems) Scan(src any) error          { return jsonbScan(items, src) }

// UintList lưu danh sách id dạng jsonb
type UintList []uint

func (l UintList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *UintList) Scan(src any) error          { return jsonbScan(l, src) }
