package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSheetTabDelimited(t *testing.T) {
	text := "Categoria\tGenero\tDistancia\tEstilo\tMarca\n" +
		"INF A1\tF\t100\tLibre\t01:15.30\n" +
		"INF A1\tM\t100\tLibre\t01:10.00\n"

	rows, skipped := ParseSheet(text, 2025)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, skipped)

	assert.Equal(t, "INF A1", rows[0].Category)
	assert.Equal(t, "F", rows[0].Gender)
	assert.Equal(t, 100, rows[0].Distance)
	assert.Equal(t, "Libre", rows[0].Style)
	require.NotNil(t, rows[0].TimeMs)
	assert.Equal(t, int64(75300), *rows[0].TimeMs)
	assert.Equal(t, "2025-INFA1-F-100-Libre", rows[0].DocID())
}

func TestParseSheetSemicolonNoHeader(t *testing.T) {
	text := "JUV A1;Femenino;200;Espalda;02:45.10"

	rows, skipped := ParseSheet(text, 2026)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, "F", rows[0].Gender)
	assert.Equal(t, 200, rows[0].Distance)
}

func TestParseSheetHourBearingMark(t *testing.T) {
	rows, skipped := ParseSheet("JUV B2,M,1500,Libre,00:18:45.20", 2025)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, skipped)
	require.NotNil(t, rows[0].TimeMs)
	assert.Equal(t, int64(1125200), *rows[0].TimeMs)
	assert.Equal(t, "18:45.20", rows[0].Display)
}

func TestParseSheetLeadingBlankLineBeforeHeader(t *testing.T) {
	text := "\nCategoria;Genero;Distancia;Estilo;Marca\n" +
		"INF A2;F;50;Mariposa;00:35.10\n"

	rows, skipped := ParseSheet(text, 2025)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, skipped)
}

func TestParseSheetNoMarkSentinel(t *testing.T) {
	rows, skipped := ParseSheet("PROM,M,50,Libre,S/MM", 2025)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, skipped)
	assert.Nil(t, rows[0].TimeMs)
	assert.Empty(t, rows[0].Display)
}

func TestParseSheetSkipsBadRows(t *testing.T) {
	text := "categoria,genero,distancia,estilo,marca\n" +
		"INF B1,F,100,Libre,01:20.00\n" +
		"INF B1,F,cien,Libre,01:20.00\n" + // bad distance
		"INF B1,X,100,Libre,01:20.00\n" + // unknown gender
		"INF B1,F,100,Libre,01:99.00\n" + // seconds out of range
		"too,short\n"

	rows, skipped := ParseSheet(text, 2025)
	assert.Len(t, rows, 1)
	assert.Equal(t, 4, skipped)
}
