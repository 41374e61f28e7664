package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type commands struct {
	catalogUC    usecase.CatalogUsecase
	reconcilerUC usecase.ReconcilerUsecase
	invoiceUC    usecase.InvoiceUsecase
	identity     service.IdentityProvider
	out          io.Writer
}

func (c *commands) run(ctx context.Context, name string, args []string) error {
	switch name {
	case "device":
		return c.device()
	case "list":
		return c.list(ctx, args)
	case "show":
		return c.show(ctx, args)
	case "add-to-cart":
		return c.apply(ctx, name, args, entity.OperationAddToCart)
	case "toggle-wishlist":
		return c.apply(ctx, name, args, entity.OperationToggleWishlist)
	case "me":
		return c.me(ctx)
	case "invoice":
		return c.invoice(ctx, args)
	default:
		return errors.Errorf("unknown command %q", name)
	}
}

func (c *commands) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}

func (c *commands) device() error {
	deviceID := c.identity.GetOrCreate()
	if !deviceID.Present() {
		return errors.New("no device identity: local storage is unavailable")
	}

	_, err := fmt.Fprintln(c.out, deviceID)

	return errors.WithStack(err)
}

func (c *commands) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	tag := fs.String("tag", "all", "listing tab: all, new, featured, sale or trending")
	locale := fs.String("locale", entity.LocaleEnglish, "display language: en or ar")
	if err := fs.Parse(args); err != nil {
		return err
	}

	views, err := c.catalogUC.ListProducts(ctx, *tag, *locale)
	if err != nil {
		return err
	}

	for _, view := range views {
		if _, err := fmt.Fprintf(c.out, "%s\t%s\t%.2f\n", view.Product.ID, view.Name, view.Display.Price); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

func (c *commands) show(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	id := fs.String("id", "", "product id")
	locale := fs.String("locale", entity.LocaleEnglish, "display language: en or ar")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("-id is required")
	}

	view, err := c.catalogUC.GetProduct(ctx, *id, *locale)
	if err != nil {
		return err
	}

	inWishlist, err := c.reconcilerUC.IsInWishlist(ctx, c.identity.GetOrCreate(), *id, entity.VariantKey(view.Display.Variant))
	if err != nil {
		return err
	}

	return c.print(struct {
		*usecase.ProductView
		InWishlist bool `json:"in_wishlist"`
	}{view, inWishlist})
}

func (c *commands) apply(ctx context.Context, name string, args []string, op entity.Operation) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	id := fs.String("id", "", "product id")
	watts := fs.String("watts", "", "variant wattage, defaults to the first variant")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("-id is required")
	}

	deviceID := c.identity.GetOrCreate()

	var (
		product *entity.Product
		variant *entity.ProductVariant
	)
	if deviceID.Present() {
		var err error
		product, variant, err = c.catalogUC.ResolveVariant(ctx, *id, *watts)
		if err != nil {
			return err
		}
	}

	result, err := c.reconcilerUC.Apply(ctx, deviceID, product, variant, op)
	if err != nil {
		return err
	}

	return c.print(result)
}

func (c *commands) me(ctx context.Context) error {
	record, err := c.reconcilerUC.GetUserRecord(ctx, c.identity.GetOrCreate())
	if err != nil {
		return err
	}

	return c.print(record)
}

func (c *commands) invoice(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invoice", flag.ContinueOnError)
	file := fs.String("file", "", "order-data JSON file")
	qrPath := fs.String("qr", "", "write the share link QR code to this PNG file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("-file is required")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return errors.Wrap(err, "failed to read order file")
	}

	var order entity.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return errors.Wrap(err, "failed to parse order file")
	}

	summary, err := c.invoiceUC.Summarize(ctx, &order)
	if err != nil {
		return err
	}

	if *qrPath != "" {
		png, err := c.invoiceUC.ShareLinkQR(order.OrderID)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*qrPath, png, 0o644); err != nil {
			return errors.Wrap(err, "failed to write QR code")
		}
	}

	return c.print(summary)
}
