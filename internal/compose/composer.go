package compose

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chenmo1212/foodorder/internal/models"
)

// Result pairs the structured submission payload with its human-readable
// markdown rendering. Both are derived from the same cart iteration, so the
// item order always matches.
type Result struct {
	Request models.OrderRequest
	Summary string
}

// Compose converts the cart lines and the chosen delivery slot into a
// submittable order. Pure function: same cart, same delivery, same output.
func Compose(lines []models.CartLine, delivery models.DeliverySelection, lang string) Result {
	items := make([]models.OrderItemRequest, 0, len(lines))
	for _, l := range lines {
		item := models.OrderItemRequest{
			Quantity:    l.Quantity,
			IsCustom:    l.Item.IsCustom,
			CustomNotes: l.Instructions,
		}
		if l.Item.IsCustom {
			item.DishName = l.Item.Name
		} else if id, err := strconv.Atoi(l.Item.ID); err == nil {
			item.DishID = id
		}
		items = append(items, item)
	}

	return Result{
		Request: models.OrderRequest{
			DeliveryDate:    delivery.DateString(),
			DeliveryTime:    delivery.Time,
			MarkdownContent: renderSummary(lines, delivery, lang),
			Items:           items,
		},
		Summary: renderSummary(lines, delivery, lang),
	}
}

// renderSummary produces the markdown document sent along with the order
// notification.
func renderSummary(lines []models.CartLine, delivery models.DeliverySelection, lang string) string {
	at := delivery.At()

	var b strings.Builder
	b.WriteString("# Order Summary\n\n")
	fmt.Fprintf(&b, "**Date:** %s\n", at.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "**Time:** %s\n\n", at.Format("03:04 PM"))
	b.WriteString("---\n\n")
	b.WriteString("## Items\n\n")

	totalQty := 0
	for i, l := range lines {
		fmt.Fprintf(&b, "%d. **%s** (x%d)", i+1, displayName(l.Item, lang), l.Quantity)
		if l.Item.IsCustom {
			b.WriteString(" 🔖")
		}
		b.WriteString("\n")
		if l.Instructions != "" {
			fmt.Fprintf(&b, "   - *Special Instructions:* %s\n", l.Instructions)
		}
		b.WriteString("\n")
		totalQty += l.Quantity
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "**Total Items:** %d\n", len(lines))
	fmt.Fprintf(&b, "**Total Quantity:** %d\n", totalQty)
	return b.String()
}

func displayName(item models.CartItem, lang string) string {
	if lang == "en" && item.NameEn != "" {
		return item.NameEn
	}
	return item.Name
}
