// Package orderstatus maps backend order status codes to display states.
// Every screen that shows an order status goes through Classify, so adding a
// status is a single edit to the table below.
package orderstatus

import "github.com/aaravmahajanofficial/cake-storefront/internal/models"

const (
	Pending   = "pending"
	Confirmed = "confirmed"
	Baking    = "baking"
	Ready     = "ready"
	Delivered = "delivered"
)

// Unranked is the Order of any code outside the known table.
const Unranked = -1

const (
	IconClock       = "clock"
	IconCheckCircle = "check-circle"
	IconPackage     = "package"
	IconTruck       = "truck"
)

type Display struct {
	Label    string
	Order    int
	Terminal bool
	Icon     string
}

var table = []struct {
	code    string
	display Display
}{
	{Pending, Display{Label: "Order Pending", Order: 0, Icon: IconClock}},
	{Confirmed, Display{Label: "Order Confirmed", Order: 1, Icon: IconCheckCircle}},
	{Baking, Display{Label: "Cake Baking", Order: 2, Icon: IconPackage}},
	{Ready, Display{Label: "Ready for Delivery", Order: 3, Icon: IconCheckCircle}},
	{Delivered, Display{Label: "Delivered", Order: 4, Terminal: true, Icon: IconTruck}},
}

// Classify is total: an unknown code is shown verbatim, unranked and non-terminal.
func Classify(code string) Display {
	for _, entry := range table {
		if entry.code == code {
			return entry.display
		}
	}

	return Display{Label: code, Order: Unranked, Icon: IconClock}
}

// Known reports whether code is one of the backend's status codes.
func Known(code string) bool {
	return Classify(code).Order != Unranked
}

// Codes returns the known codes in progress order.
func Codes() []string {
	codes := make([]string, 0, len(table))
	for _, entry := range table {
		codes = append(codes, entry.code)
	}

	return codes
}

func View(code string) models.StatusView {
	d := Classify(code)

	return models.StatusView{
		Code:     code,
		Label:    d.Label,
		Order:    d.Order,
		Terminal: d.Terminal,
		Icon:     d.Icon,
	}
}

// Timeline lays the fixed progress sequence out against the current code.
// For an unranked code no step is done or current.
func Timeline(code string) []models.TimelineStep {
	current := Classify(code).Order
	steps := make([]models.TimelineStep, 0, len(table))

	for _, entry := range table {
		steps = append(steps, models.TimelineStep{
			Code:    entry.code,
			Label:   entry.display.Label,
			Done:    current != Unranked && entry.display.Order <= current,
			Current: entry.display.Order == current,
		})
	}

	return steps
}
