package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProposal_ScenarioA(t *testing.T) {
	q := NewQuote(scenarioA())

	want := "Presupuesto Rápido\n" +
		"\n" +
		"Tarifa por hora: 28,66\u00a0€\n" +
		"Horas estimadas: 10h\n" +
		"\n" +
		"*************************************\n" +
		"TOTAL PROYECTO: 286,57\u00a0€\n" +
		"*************************************\n" +
		"\n" +
		"*Presupuesto válido por 15 días."

	assert.Equal(t, want, q.Proposal)
	assert.Equal(t, "28,66\u00a0€", q.Hourly)
	assert.Equal(t, "229,25\u00a0€", q.Daily)
	assert.Equal(t, "286,57\u00a0€", q.Project)
}

func TestProposal_ScenarioB_Empty(t *testing.T) {
	q := NewQuote(Inputs{})

	assert.Equal(t, "0,00\u00a0€", q.Hourly)
	assert.Equal(t, "0,00\u00a0€", q.Daily)
	assert.Equal(t, "0,00\u00a0€", q.Project)
	assert.Contains(t, q.Proposal, "Tarifa por hora: 0,00\u00a0€\n")
	assert.Contains(t, q.Proposal, "Horas estimadas: 0h\n")
	assert.Contains(t, q.Proposal, "TOTAL PROYECTO: 0,00\u00a0€\n")
	assert.True(t, strings.HasSuffix(q.Proposal, "*Presupuesto válido por 15 días."))
}

func TestProposal_RawHours(t *testing.T) {
	tests := []struct {
		hours *float64
		want  string
	}{
		{nil, "Horas estimadas: 0h"},
		{Float(0), "Horas estimadas: 0h"},
		{Float(40), "Horas estimadas: 40h"},
		{Float(12.5), "Horas estimadas: 12.5h"},
		{Float(1500), "Horas estimadas: 1500h"},
		{Float(0.000001), "Horas estimadas: 0.000001h"},
		{Float(1e20), "Horas estimadas: 100000000000000000000h"},
		{Float(1e21), "Horas estimadas: 1e+21h"},
		{Float(1.23e23), "Horas estimadas: 1.23e+23h"},
		{Float(1e-7), "Horas estimadas: 1e-7h"},
		{Float(1.5e-7), "Horas estimadas: 1.5e-7h"},
		{Float(-2.5e-8), "Horas estimadas: -2.5e-8h"},
	}

	for _, tt := range tests {
		in := scenarioA()
		in.ProjectHours = tt.hours
		assert.Contains(t, NewQuote(in).Proposal, tt.want)
	}
}

func TestProposal_LineLayout(t *testing.T) {
	lines := strings.Split(NewQuote(scenarioA()).Proposal, "\n")

	assert.Len(t, lines, 10)
	assert.Equal(t, "Presupuesto Rápido", lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, strings.Repeat("*", 37), lines[5])
	assert.Equal(t, strings.Repeat("*", 37), lines[7])
}
