package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcalc/internal/keypad"
)

var layout = [][]keypad.Action{
	{keypad.MemoryClear, keypad.MemoryRecall, keypad.MemoryStore, keypad.MemoryPlus, keypad.MemoryMinus},
	{keypad.Digit7, keypad.Digit8, keypad.Digit9, keypad.Divide, keypad.SquareRoot},
	{keypad.Digit4, keypad.Digit5, keypad.Digit6, keypad.Multiply, keypad.Percent},
	{keypad.Digit1, keypad.Digit2, keypad.Digit3, keypad.Subtract, keypad.Inverse},
	{keypad.Digit0, keypad.Decimal, keypad.ToggleSign, keypad.Add, keypad.Power},
	{keypad.Clear, keypad.Backspace, keypad.Equals},
}

var labels = map[keypad.Action]string{
	keypad.MemoryClear:  "MC",
	keypad.MemoryRecall: "MR",
	keypad.MemoryStore:  "MS",
	keypad.MemoryPlus:   "M+",
	keypad.MemoryMinus:  "M-",
	keypad.Divide:       "÷",
	keypad.Multiply:     "×",
	keypad.Subtract:     "−",
	keypad.Add:          "+",
	keypad.Power:        "xʸ",
	keypad.SquareRoot:   "√",
	keypad.Percent:      "%",
	keypad.Inverse:      "1/x",
	keypad.ToggleSign:   "±",
	keypad.Clear:        "C",
	keypad.Backspace:    "⌫",
	keypad.Equals:       "=",
}

func (a *App) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		a.renderDisplay(),
		a.renderKeypad(),
		a.renderToast(),
	)
	if a.showHistory {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, a.renderHistory())
	}
	footer := footerStyle.Render(a.help.ShortHelpView(a.keys.HelpBindings(
		keypad.Equals, keypad.Clear, keypad.ToggleHistory, keypad.CycleLocale, keypad.Quit,
	)))
	return body + "\n" + footer
}

func (a *App) renderHeader() string {
	meta := a.session
	if a.locale != nil {
		meta += " · " + a.locale.Tag()
	}
	line := titleStyle.Render("jaskcalc") + " " + metaStyle.Render(meta)
	if a.engine.Memory() != 0 {
		line += " " + memoryStyle.Render("M")
	}
	return line
}

func (a *App) renderDisplay() string {
	if a.engine.Err() != nil {
		return displayErrorStyle.Render(a.engine.Screen())
	}
	return displayStyle.Render(a.engine.Screen())
}

func (a *App) renderKeypad() string {
	rows := make([]string, 0, len(layout))
	for _, row := range layout {
		cells := make([]string, 0, len(row))
		for _, action := range row {
			cells = append(cells, a.renderButton(action))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderButton(action keypad.Action) string {
	label, ok := labels[action]
	switch {
	case action == keypad.Decimal:
		label = string(a.engine.Separators().Decimal)
	case !ok:
		label = string(action)
	}
	style := buttonStyle
	switch {
	case action == a.pressed:
		style = pressedButtonStyle
	case strings.HasPrefix(string(action), "memory_"):
		style = memoryButtonStyle
	case !action.IsDigit() && action != keypad.Decimal:
		style = operatorButtonStyle
	}
	return style.Render(label) + " "
}

func (a *App) renderToast() string {
	if a.toast == "" {
		return ""
	}
	if a.toastErr {
		return toastErrorStyle.Render(a.toast)
	}
	return toastInfoStyle.Render(a.toast)
}

func (a *App) renderHistory() string {
	var b strings.Builder
	b.WriteString(historyTitleStyle.Render("History"))
	if len(a.history) == 0 {
		b.WriteString("\n" + historyStyle.Render("(empty)"))
	}
	for _, h := range a.history {
		if h.ErrorKind != "" {
			b.WriteString("\n" + historyErrorStyle.Render(fmt.Sprintf("%s  %s", h.Expression, h.ErrorKind)))
			continue
		}
		b.WriteString("\n" + historyStyle.Render(fmt.Sprintf("%s = %s", h.Expression, h.Result)))
	}
	return historyBorderStyle.Render(b.String())
}
