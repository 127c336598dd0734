package bill_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billed/internal/domain/bill"
)

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"2004-04-04":           "4 Avr. 04",
		"2001-01-01":           "1 Jan. 01",
		"2002-02-02":           "2 Fév. 02",
		"2021-08-15":           "15 Aoû. 21",
		"2022-12-31":           "31 Déc. 22",
		"2003-07-09T10:00:00Z": "9 Jui. 03",
	}
	for raw, want := range cases {
		got, err := bill.FormatDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestFormatDate_FechaInvalida(t *testing.T) {
	_, err := bill.FormatDate("pas une date")
	assert.Error(t, err)

	_, err = bill.FormatDate("2004-13-40")
	assert.Error(t, err)
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "En attente", bill.FormatStatus("pending"))
	assert.Equal(t, "Accepté", bill.FormatStatus("accepted"))
	assert.Equal(t, "Refused", bill.FormatStatus("refused"))
	assert.Equal(t, "autre", bill.FormatStatus("autre"))
}

func TestCompareDatesDesc(t *testing.T) {
	dates := []string{"2004-04-04", "basura", "2002-02-02", "2003-03-03"}
	slices.SortStableFunc(dates, bill.CompareDatesDesc)
	assert.Equal(t, []string{"2004-04-04", "2003-03-03", "2002-02-02", "basura"}, dates)
}
