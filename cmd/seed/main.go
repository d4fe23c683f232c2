// Seed writes starter catalog and answer files so the service has data on a
// fresh checkout. Existing files are left alone unless --force is passed.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"vape-support-be/internal/config"
	"vape-support-be/pkg/answercache"
	"vape-support-be/pkg/store"
)

func main() {
	force := flag.Bool("force", false, "overwrite existing data files")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}
	cfg := config.Load()

	color.Cyan("🌱 Seeding starter data files\n")

	writeJSON(cfg.Data.CatalogPath, starterProducts(), *force)
	writeJSON(cfg.Data.AnswersPath, answercache.Defaults(), *force)

	color.Green("Done.")
}

func writeJSON(path string, v interface{}, force bool) {
	if _, err := os.Stat(path); err == nil && !force {
		color.Yellow("skip %s (exists, use --force to overwrite)", path)
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		color.Red("mkdir for %s failed: %v", path, err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		color.Red("marshal %s failed: %v", path, err)
		os.Exit(1)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		color.Red("write %s failed: %v", path, err)
		os.Exit(1)
	}
	color.Green("wrote %s", path)
}

func starterProducts() []store.Product {
	return []store.Product{
		{
			ID:          "v5",
			Name:        "V5",
			FullName:    "Divine Tribe V5 Concentrate Atomizer",
			URL:         "https://ineedhemp.com/products/v5",
			Price:       "$89.99",
			Category:    "concentrate",
			Priority:    1,
			Boost:       1.5,
			Description: "Flagship ceramic-cup concentrate atomizer with precise temperature control.",
			Features: []string{
				"Ceramic heating cup",
				"Temperature control via TC mode",
				"Replaceable heater assembly",
			},
			Keywords: []string{"v5", "concentrate", "wax", "dab", "atomizer"},
		},
		{
			ID:          "v5_xl",
			Name:        "V5 XL",
			FullName:    "Divine Tribe V5 XL Concentrate Atomizer",
			URL:         "https://ineedhemp.com/products/v5-xl",
			Price:       "$109.99",
			Category:    "concentrate",
			Priority:    1,
			Boost:       1.4,
			Description: "Larger-capacity version of the V5 for bigger sessions.",
			Features: []string{
				"Oversized ceramic cup",
				"Same heater platform as the V5",
				"Carb cap included",
			},
			Keywords: []string{"v5 xl", "xl", "concentrate", "wax", "large"},
		},
		{
			ID:          "core_2",
			Name:        "Core 2.0",
			FullName:    "Divine Tribe Core 2.0 Deluxe E-Rig",
			URL:         "https://ineedhemp.com/products/core-2-deluxe",
			Price:       "$199.99",
			Category:    "concentrate",
			Priority:    2,
			Boost:       1.3,
			Description: "All-in-one e-rig with glass bubbler and swappable atomizers.",
			Features: []string{
				"Built-in battery",
				"Glass bubbler attachment",
				"Three voltage presets",
			},
			Keywords: []string{"core", "e-rig", "rig", "bubbler", "deluxe"},
		},
		{
			ID:          "nice_dreamz",
			Name:        "Nice Dreamz",
			FullName:    "Nice Dreamz Dry Herb Vaporizer",
			URL:         "https://ineedhemp.com/products/nice-dreamz",
			Price:       "$129.99",
			Category:    "dry_herb",
			Priority:    2,
			Boost:       1.2,
			Description: "Convection dry herb vaporizer with even heating and easy loading.",
			Features: []string{
				"Full convection heating",
				"Adjustable airflow",
				"USB-C fast charging",
			},
			Keywords: []string{"nice dreamz", "dry herb", "flower", "herb", "convection"},
		},
		{
			ID:          "tug_boat",
			Name:        "Tug Boat",
			FullName:    "Divine Tribe Tug Boat Mechanical Mod",
			URL:         "https://ineedhemp.com/products/tug-boat",
			Price:       "$59.99",
			Category:    "accessory",
			Priority:    3,
			Boost:       1.0,
			Description: "Rugged mechanical mod pairing with the V5 line.",
			Features: []string{
				"Single 18650 battery",
				"Spring-loaded 510 connection",
			},
			Keywords: []string{"tug", "tug boat", "mod", "battery", "18650"},
		},
		{
			ID:          "lightning_pen",
			Name:        "Lightning Pen",
			FullName:    "Divine Tribe Lightning Pen Vape",
			URL:         "https://ineedhemp.com/products/lightning-pen",
			Price:       "$49.99",
			Category:    "concentrate",
			Priority:    3,
			Boost:       1.0,
			Description: "Pocket pen vape for concentrates on the go.",
			Features: []string{
				"Slim pen form factor",
				"Three power levels",
				"Magnetic cap",
			},
			Keywords: []string{"lightning", "pen", "portable", "discreet"},
		},
		{
			ID:          "ruby_insert",
			Name:        "Ruby Insert",
			FullName:    "Ruby Cup Insert for V5",
			URL:         "https://ineedhemp.com/products/ruby-insert",
			Price:       "$34.99",
			Category:    "accessory",
			Priority:    4,
			Boost:       1.0,
			Description: "Ruby cup insert for improved flavor and heat retention in the V5.",
			Features: []string{
				"Machined ruby cup",
				"Drop-in fit for V5 and V5 XL",
			},
			Keywords: []string{"ruby", "insert", "cup", "flavor"},
		},
		{
			ID:          "gen2_heater",
			Name:        "Gen2 Heater",
			FullName:    "Gen2 Replacement Heater Assembly",
			URL:         "https://ineedhemp.com/products/gen2-heater",
			Price:       "$24.99",
			Category:    "accessory",
			Priority:    4,
			Boost:       1.0,
			Description: "Replacement heater assembly for V5-platform atomizers.",
			Features: []string{
				"Direct replacement part",
				"Pre-wrapped coil",
			},
			Keywords: []string{"gen2", "heater", "coil", "replacement", "repair"},
		},
	}
}
