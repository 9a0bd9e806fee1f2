package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"mirepoix/internal/config"
	"mirepoix/internal/recipes"
	"mirepoix/internal/units"
)

func main() {
	var serve bool
	var addr string
	var to string
	var recipeSource string
	var quantity float64
	var quantityMax float64
	var unit string
	var help bool

	flag.BoolVar(&serve, "serve", false, "Run HTTP server mode")
	flag.StringVar(&addr, "addr", "", "Address to bind in server mode (default from ADDR env)")
	flag.StringVar(&to, "to", "", "Target system: metric or imperial (default from UNIT_SYSTEM env)")
	flag.StringVar(&recipeSource, "recipe", "", "Recipe to localize: a file path or http(s) URL")
	flag.StringVar(&recipeSource, "r", "", "Recipe to localize (short form)")
	flag.Float64Var(&quantity, "quantity", 0, "Quantity to convert")
	flag.Float64Var(&quantity, "q", 0, "Quantity to convert (short form)")
	flag.Float64Var(&quantityMax, "max", 0, "Optional top of a quantity range")
	flag.StringVar(&unit, "unit", "", "Unit of the quantity (e.g. cup, lb, ml)")
	flag.StringVar(&unit, "u", "", "Unit of the quantity (short form)")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message")
	flag.Parse()

	if help {
		showHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	target := cfg.Display.DefaultSystem
	if to != "" {
		parsed, ok := units.ParseSystem(to)
		if !ok {
			log.Fatalf("invalid target system %q, want metric or imperial", to)
		}
		target = parsed
	}

	if serve {
		if addr == "" {
			addr = cfg.Server.Addr
		}
		if err := runServer(cfg, addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	if recipeSource != "" {
		if err := localizeRecipe(recipeSource, target); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}

	if unit != "" {
		convertQuantity(quantity, quantityMax, unit, target)
		return
	}

	showHelp()
	os.Exit(1)
}

func localizeRecipe(source string, target units.System) error {
	var recipe *recipes.Recipe
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		recipe, err = recipes.FetchRecipe(context.Background(), source)
	} else {
		var f *os.File
		f, err = os.Open(source)
		if err != nil {
			return fmt.Errorf("failed to open recipe file: %w", err)
		}
		defer f.Close()
		recipe, err = recipes.ReadRecipe(f)
	}
	if err != nil {
		return err
	}

	fmt.Print(recipes.NewFormatter(target).FormatRecipe(recipe))
	return nil
}

func convertQuantity(quantity, quantityMax float64, unit string, target units.System) {
	var maxPtr *float64
	if quantityMax != 0 {
		maxPtr = &quantityMax
	}
	converted := units.ConvertIngredient(&quantity, maxPtr, unit, target)

	display := converted.DisplayQuantity
	if converted.DisplayQuantityMax != "" {
		display += "-" + converted.DisplayQuantityMax
	}
	fmt.Printf("%s %s\n", display, converted.Unit)
}

func showHelp() {
	fmt.Println(`mirepoix - recipe unit conversion

Usage:
  mirepoix -q 2 -u cup -to metric       Convert a single quantity
  mirepoix -q 1 -max 2 -u lb -to metric Convert a quantity range
  mirepoix -r recipe.json -to imperial  Localize a recipe file
  mirepoix -r https://... -to metric    Localize a remote recipe
  mirepoix -serve -addr :8080           Run the conversion HTTP service

Environment:
  ADDR         Listen address for -serve (default :8080)
  UNIT_SYSTEM  Default target system (metric or imperial, default metric)`)
}
