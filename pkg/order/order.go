// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package order reconciles order submissions and existing-order lookups
// back onto the originating record set.
package order

import (
	"github.com/walteh/eodl/pkg/rapi"
	"github.com/walteh/eodl/pkg/record"
)

// 🧾 Item is one order item: the association between a record and its
// orderId/itemId pair, plus the submission outcome metadata.
type Item struct {
	OrderID  string
	ItemID   string
	RecordID string
	Metadata map[string]any
}

// 📦 Order groups the items submitted under one order id.
type Order struct {
	OrderID string
	Items   []*Item
}

// 📚 Set holds all orders of a run, keyed by order id, with items in
// ingestion order. A Set always references the record set its items
// originated from.
type Set struct {
	records *record.Set
	orders  []*Order
	byID    map[string]*Order
}

// 🏭 NewSet creates an empty order set over the given records.
func NewSet(records *record.Set) *Set {
	return &Set{records: records, byID: map[string]*Order{}}
}

// 📥 IngestResults merges an order response onto the set and annotates the
// originating records. Accepts either a bare item list or the RAPI's
// {"items": [...]} envelope.
func (s *Set) IngestResults(results any) {
	items := normalizeItems(results)

	for _, raw := range items {
		item := parseItem(raw)

		if rec := s.records.Get(item.RecordID); rec != nil {
			rec.SetMetadata("orderSubmitted", "Yes")
			rec.SetMetadata("orderId", item.OrderID)
			if item.ItemID != "" {
				rec.SetMetadata("itemId", item.ItemID)
			}
			if v, ok := raw["status"]; ok {
				rec.SetMetadata("orderStatus", v)
			}
			if v, ok := raw["statusMessage"]; ok {
				rec.SetMetadata("statusMessage", v)
			}
			if v, ok := raw["dateRapiOrdered"]; ok {
				rec.SetMetadata("dateRapiOrdered", v)
			}
		}

		ord, ok := s.byID[item.OrderID]
		if !ok {
			ord = &Order{OrderID: item.OrderID}
			s.orders = append(s.orders, ord)
			s.byID[item.OrderID] = ord
		}
		ord.Items = append(ord.Items, item)
	}
}

func normalizeItems(results any) []rapi.Raw {
	switch v := results.(type) {
	case []rapi.Raw:
		return v
	case rapi.Raw:
		if items, ok := v["items"].([]any); ok {
			out := make([]rapi.Raw, 0, len(items))
			for _, it := range items {
				if m, ok := it.(map[string]any); ok {
					out = append(out, m)
				}
			}
			return out
		}
	}
	return nil
}

func parseItem(raw rapi.Raw) *Item {
	item := &Item{Metadata: map[string]any{}}
	for k, v := range raw {
		if k == "parameters" {
			if params, ok := v.(map[string]any); ok {
				for pk, pv := range params {
					item.Metadata[pk] = pv
				}
				continue
			}
		}
		item.Metadata[k] = v
	}
	item.OrderID = str(raw["orderId"])
	item.ItemID = str(raw["itemId"])
	item.RecordID = str(raw["recordId"])
	return item
}

// 🔢 Count returns the number of orders.
func (s *Set) Count() int {
	return len(s.orders)
}

// 🔢 CountItems returns the number of items across all orders.
func (s *Set) CountItems() int {
	n := 0
	for _, o := range s.orders {
		n += len(o.Items)
	}
	return n
}

// Orders returns the orders in ingestion order.
func (s *Set) Orders() []*Order {
	return s.orders
}

// Records returns the record set the orders reference.
func (s *Set) Records() *record.Set {
	return s.records
}

// 📦 RawItems projects every item's metadata for the download capability.
func (s *Set) RawItems() []rapi.Raw {
	var out []rapi.Raw
	for _, o := range s.orders {
		for _, item := range o.Items {
			out = append(out, item.Metadata)
		}
	}
	return out
}

// str keeps numeric ids in digit form, see rapi.Str.
func str(v any) string {
	return rapi.Str(v)
}
