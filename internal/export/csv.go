package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mhartmann/tellersim/internal/types"
)

// header matches the display table's field set and order exactly; the
// export applies no additional transformation.
var header = []string{
	"id",
	"customer",
	"teller",
	"arrival",
	"start",
	"end",
	"waiting_min",
	"service_min",
}

// WriteCSV serializes a simulation table as CSV, one row per customer.
func WriteCSV(w io.Writer, rows []types.SimulationRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.ID),
			row.CustomerName,
			string(row.TellerID),
			row.ArrivalClock,
			row.StartClock,
			row.EndClock,
			strconv.FormatFloat(row.WaitingMinutes, 'f', -1, 64),
			strconv.FormatFloat(row.ServiceTime, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
