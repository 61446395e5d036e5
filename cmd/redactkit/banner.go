package main

import "github.com/suryansh-23/redactkit/internal/ui"

func banner() string {
	return ui.Logo() + "\n" + ui.Hint(platformLabel()+" · "+shellLabel())
}
