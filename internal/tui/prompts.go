package tui

import "github.com/charmbracelet/huh"

// Confirm shows a yes/no confirmation prompt.
func Confirm(title, description string) (bool, error) {
	var answer bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&answer),
		),
	).WithTheme(Theme())

	if err := form.Run(); err != nil {
		return false, err
	}
	return answer, nil
}

// Input shows a free-text prompt with a placeholder.
func Input(title, description, placeholder string) (string, error) {
	var answer string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Placeholder(placeholder).
				Value(&answer),
		),
	).WithTheme(Theme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return answer, nil
}

// Select shows a single-select prompt.
func Select(title, description string, options []huh.Option[string]) (string, error) {
	var answer string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description(description).
				Options(options...).
				Value(&answer),
		),
	).WithTheme(Theme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return answer, nil
}
