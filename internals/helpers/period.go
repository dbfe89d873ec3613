// file: internals/helpers/period.go
package helper

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Utilitas periode & tanggal untuk modul finance.
// Semua perhitungan pakai tanggal polos (jam 00:00 waktu server) supaya
// partisi upcoming/overdue dan window bulanan konsisten.

const dateLayout = "2006-01-02"

// Today memotong jam ke awal hari.
func Today() time.Time {
	return StartOfDay(time.Now())
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MonthRange mengembalikan [awal bulan, awal bulan berikutnya) untuk window query.
func MonthRange(year int, month int, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// ParseDateQuery membaca query param tanggal (YYYY-MM-DD); nil kalau kosong.
func ParseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" harus YYYY-MM-DD")
	}
	return &t, nil
}

// DaysUntil menghitung selisih hari due - today (negatif = sudah lewat).
func DaysUntil(due time.Time, today time.Time) int {
	d := StartOfDay(due).Sub(StartOfDay(today))
	return int(d.Hours() / 24)
}
