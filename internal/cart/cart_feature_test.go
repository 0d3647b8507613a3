package cart_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aaravmahajanofficial/cake-storefront/internal/cart"
	appErrors "github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type cartTestContext struct {
	store  *cart.Store
	before cart.Snapshot
	err    error
}

func (c *cartTestContext) reset() {
	c.store = cart.NewStore()
	c.before = cart.Snapshot{}
	c.err = nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.reset()
	return nil
}

func (c *cartTestContext) theCartContains(quantity int, id string, price int) error {
	return c.store.AddItem(models.CatalogItem{ItemID: id, Name: id, UnitPrice: decimal.NewFromInt(int64(price))}, quantity)
}

func (c *cartTestContext) iAdd(quantity int, id string, price int) error {
	c.before = c.store.Snapshot()
	c.err = c.store.AddItem(models.CatalogItem{ItemID: id, Name: id, UnitPrice: decimal.NewFromInt(int64(price))}, quantity)
	return nil
}

func (c *cartTestContext) iSetTheQuantity(id string, quantity int) error {
	c.before = c.store.Snapshot()
	c.store.SetQuantity(id, quantity)
	return nil
}

func (c *cartTestContext) iRemove(id string) error {
	c.before = c.store.Snapshot()
	c.store.RemoveItem(id)
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.store.Clear()
	return nil
}

func (c *cartTestContext) cakeHasQuantity(id string, quantity int) error {
	for _, line := range c.store.Items() {
		if line.ItemID == id {
			if line.Quantity != quantity {
				return fmt.Errorf("expected quantity %d for %q, got %d", quantity, id, line.Quantity)
			}
			return nil
		}
	}

	return fmt.Errorf("cake %q is not in the cart", id)
}

func (c *cartTestContext) theCartHoldsItems(count int) error {
	if got := c.store.TotalItemCount(); got != count {
		return fmt.Errorf("expected %d items, got %d", count, got)
	}
	return nil
}

func (c *cartTestContext) theCartHasLines(count int) error {
	if got := c.store.Len(); got != count {
		return fmt.Errorf("expected %d lines, got %d", count, got)
	}
	return nil
}

func (c *cartTestContext) theSubtotalIs(amount int) error {
	if got := c.store.Subtotal(); !got.Equal(decimal.NewFromInt(int64(amount))) {
		return fmt.Errorf("expected subtotal %d, got %s", amount, got)
	}
	return nil
}

func (c *cartTestContext) theOperationFailsWithAValidationError() error {
	if c.err == nil {
		return errors.New("expected the operation to fail")
	}
	if !appErrors.HasCode(c.err, appErrors.ErrCodeValidation) {
		return fmt.Errorf("expected a validation error, got %v", c.err)
	}
	return nil
}

func (c *cartTestContext) theCartIsUnchanged() error {
	after := c.store.Snapshot()
	if after.Version() != c.before.Version() || after.Len() != c.before.Len() {
		return fmt.Errorf("cart changed: version %d -> %d", c.before.Version(), after.Version())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^the cart contains (\d+) of cake "([^"]*)" priced (\d+)$`, tc.theCartContains)

	// When steps
	ctx.Step(`^I add (-?\d+) of cake "([^"]*)" priced (\d+)$`, tc.iAdd)
	ctx.Step(`^I set the quantity of cake "([^"]*)" to (-?\d+)$`, tc.iSetTheQuantity)
	ctx.Step(`^I remove cake "([^"]*)"$`, tc.iRemove)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)

	// Then steps
	ctx.Step(`^cake "([^"]*)" has quantity (\d+)$`, tc.cakeHasQuantity)
	ctx.Step(`^the cart holds (\d+) items$`, tc.theCartHoldsItems)
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^the subtotal is (\d+)$`, tc.theSubtotalIs)
	ctx.Step(`^the operation fails with a validation error$`, tc.theOperationFailsWithAValidationError)
	ctx.Step(`^the cart is unchanged$`, tc.theCartIsUnchanged)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
