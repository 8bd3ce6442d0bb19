package seeders

import (
	"fmt"
	"time"

	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDurations fills the class-length dropdown: every quarter hour from
// 15 minutes to 3 hours.
func SeedDurations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Duration{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var rows []models.Duration
	for minutes := 15; minutes <= 180; minutes += 15 {
		rows = append(rows, models.Duration{
			DurationValue: minutes,
			DurationText:  durationText(minutes),
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		configslog.Log.Error("Seeding durations failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Seeded %d durations", len(rows))
	return nil
}

func durationText(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d minutes", m)
	case m == 0 && h == 1:
		return "1 hour"
	case m == 0:
		return fmt.Sprintf("%d hours", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// SeedReservationCounts fills the class-capacity dropdown.
func SeedReservationCounts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ReservationCount{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var rows []models.ReservationCount
	for v := 5; v <= 100; v += 5 {
		rows = append(rows, models.ReservationCount{ReservationCountValue: v})
	}
	if err := db.Create(&rows).Error; err != nil {
		configslog.Log.Error("Seeding reservation counts failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Seeded %d reservation counts", len(rows))
	return nil
}

// SeedDays fills the day-of-week reference table, Sunday first to match
// the stored day numbers.
func SeedDays(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Day{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var rows []models.Day
	for d := 0; d <= 6; d++ {
		rows = append(rows, models.Day{
			DayNumber: d,
			DayValue:  time.Weekday(d).String(),
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		configslog.Log.Error("Seeding days failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Seeded %d days", len(rows))
	return nil
}
