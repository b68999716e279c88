package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var frenchLabels = map[string]string{
	"Citizen":       "Citoyen",
	"Tag":           "Tag",
	"Job":           "Métier",
	"Level":         "Niveau",
	"Survival":      "Survie",
	"Base survival": "Survie de base",
	"Defense":       "Défense",
	"Wound":         "Blessure",
	"Terror":        "Terreur",
	"dead":          "mort",
	"%d citizens":   "%d citoyens",
}

func init() {
	for key, msg := range frenchLabels {
		if err := message.SetString(language.French, key, msg); err != nil {
			panic(err)
		}
	}
}

func printer(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}
