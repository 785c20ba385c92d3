// Package category contains category-related use cases.
package category

import (
	"github.com/google/uuid"

	"github.com/moneykeeper/backend/internal/domain/entity"
)

// defaultCategoryNamespace is the UUIDv5 namespace for system-seeded
// category IDs. Deriving the ID from the name makes the seed batch
// idempotent: concurrent first seeds collide on the primary key and no-op.
var defaultCategoryNamespace = uuid.MustParse("9f2c1a46-3b7e-4d15-8c0a-5e92d4d1b6f3")

// defaultCategorySeed is the fixed, ordered set of system categories every
// user sees. Colors are Flutter-style ARGB hex strings.
var defaultCategorySeed = []struct {
	Name  string
	Kind  entity.CategoryKind
	Icon  string
	Color string
}{
	{Name: "Ăn uống", Kind: entity.CategoryKindExpense, Icon: "restaurant", Color: "0xFFFF7043"},
	{Name: "Di chuyển", Kind: entity.CategoryKindExpense, Icon: "directions_bus", Color: "0xFF42A5F5"},
	{Name: "Mua sắm", Kind: entity.CategoryKindExpense, Icon: "shopping_bag", Color: "0xFFAB47BC"},
	{Name: "Hóa đơn", Kind: entity.CategoryKindExpense, Icon: "receipt_long", Color: "0xFFFFCA28"},
	{Name: "Giải trí", Kind: entity.CategoryKindExpense, Icon: "movie", Color: "0xFFEC407A"},
	{Name: "Lương", Kind: entity.CategoryKindIncome, Icon: "payments", Color: "0xFF66BB6A"},
	{Name: "Thưởng", Kind: entity.CategoryKindIncome, Icon: "card_giftcard", Color: "0xFF26C6DA"},
	{Name: "Đầu tư", Kind: entity.CategoryKindIncome, Icon: "trending_up", Color: "0xFF8D6E63"},
}

// DefaultCategories builds the seed set as entities, in seed order.
func DefaultCategories() []*entity.Category {
	categories := make([]*entity.Category, len(defaultCategorySeed))
	for i, seed := range defaultCategorySeed {
		id := uuid.NewSHA1(defaultCategoryNamespace, []byte(seed.Name))
		categories[i] = entity.NewDefaultCategory(id, seed.Name, seed.Kind, seed.Icon, seed.Color)
	}
	return categories
}
