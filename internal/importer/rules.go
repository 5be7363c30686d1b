package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules is the keyword data the classifier runs on. The tables are pure
// data so institutions and merchants can be added without code changes.
type Rules struct {
	Transfer   []string            `yaml:"transfer"`
	Income     []string            `yaml:"income"`
	Categories map[string][]string `yaml:"categories"`
}

// DefaultRules returns the built-in keyword tables. Matching is
// case-insensitive substring, so entries are lowercase fragments.
func DefaultRules() Rules {
	return Rules{
		Transfer: []string{
			"transfer", "xfer", "trnsfr", "zelle", "venmo", "paypal", "wire",
			"ach transfer", "between accounts", "internal", "savings", "checking",
			"brokerage", "mobile deposit", "online banking transfer",
		},
		Income: []string{
			"payroll", "direct dep", "salary", "wage", "employer", "ach credit",
			"tax refund", "irs treas", "interest earned",
		},
		Categories: map[string][]string{
			"Housing":   {"rent", "mortgage", "hoa", "property tax", "lease"},
			"Utilities": {"electric", "gas bill", "water bill", "internet", "comcast", "xfinity", "verizon", "at&t", "t-mobile", "sprint", "pg&e", "power"},
			"Groceries": {"trader joe", "whole foods", "safeway", "kroger", "costco", "aldi", "publix", "sprouts", "grocery", "wegmans"},
			"Dining":    {"restaurant", "mcdonald", "starbucks", "chipotle", "doordash", "uber eats", "grubhub", "pizza", "burger", "cafe", "coffee", "sushi", "taco", "panda express", "chick-fil-a", "panera", "sweetgreen"},
			"Transportation": {"gas station", "shell", "chevron", "bp ", "exxon", "uber trip", "lyft", "parking", "toll", "metro", "transit", "fuel"},
			"Auto":           {"car wash", "jiffy lube", "autozone", "geico", "progressive", "state farm", "car payment", "dmv", "auto insurance"},
			"Shopping":       {"amazon", "target", "walmart", "best buy", "apple.com", "ebay", "etsy", "nordstrom", "macys", "nike", "home depot", "lowes", "ikea"},
			"Entertainment":  {"netflix", "spotify", "hulu", "disney", "hbo", "movie", "theater", "concert", "ticketmaster", "steam", "playstation", "xbox", "youtube premium"},
			"Health":         {"pharmacy", "cvs", "walgreens", "doctor", "hospital", "dentist", "medical", "copay", "urgent care"},
			"Subscriptions":  {"subscription", "membership", "adobe", "microsoft 365", "dropbox", "icloud", "openai", "github", "notion"},
			"Insurance":      {"insurance", "allstate", "liberty mutual", "usaa", "aflac"},
			"Education":      {"tuition", "school", "university", "coursera", "udemy"},
			"Personal Care":  {"salon", "barber", "spa", "gym", "fitness", "planet fitness", "equinox"},
			"Fees & Charges": {"overdraft", "atm fee", "service charge", "late fee", "interest charge", "annual fee"},
		},
	}
}

// LoadRules reads a YAML rules file and appends its entries to the
// built-in tables. An empty path returns the defaults unchanged.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file: %w", err)
	}

	var extra Rules
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return rules, fmt.Errorf("failed to parse rules file: %w", err)
	}

	rules.Transfer = append(rules.Transfer, extra.Transfer...)
	rules.Income = append(rules.Income, extra.Income...)
	for cat, kws := range extra.Categories {
		rules.Categories[cat] = append(rules.Categories[cat], kws...)
	}
	return rules, nil
}
