package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"salvatore/models"

	"go.uber.org/zap"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// Saver persists a completed booking record to the external sinks.
type Saver interface {
	Save(ctx context.Context, rec models.BookingRecord) error
}

// GoogleSaver writes each booking to Google Calendar (one event) and Google
// Sheets (one appended row). The two writes are independent: either may fail
// without blocking the other, and the caller treats any error as non-fatal.
type GoogleSaver struct {
	Calendar   *calendar.Service
	Sheets     *sheets.Service
	CalendarID string
	SheetID    string
	SheetRange string
	Location   *time.Location
	Logger     *zap.Logger
}

// GoogleSaverConfig carries the saver's external identifiers.
type GoogleSaverConfig struct {
	CalendarID string
	SheetID    string
	SheetRange string
	Timezone   string
}

func NewGoogleSaver(ctx context.Context, client *http.Client, cfg GoogleSaverConfig, logger *zap.Logger) (*GoogleSaver, error) {
	calSvc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	sheetsSvc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid event timezone %q: %w", cfg.Timezone, err)
	}

	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	sheetRange := cfg.SheetRange
	if sheetRange == "" {
		sheetRange = "Bookings!A1"
	}

	return &GoogleSaver{
		Calendar:   calSvc,
		Sheets:     sheetsSvc,
		CalendarID: calendarID,
		SheetID:    cfg.SheetID,
		SheetRange: sheetRange,
		Location:   loc,
		Logger:     logger,
	}, nil
}

func (s *GoogleSaver) Save(ctx context.Context, rec models.BookingRecord) error {
	var calErr, sheetErr error

	event, err := buildCalendarEvent(rec, s.Location)
	if err != nil {
		calErr = err
	} else if _, err := s.Calendar.Events.Insert(s.CalendarID, event).SendUpdates("all").Context(ctx).Do(); err != nil {
		calErr = fmt.Errorf("calendar insert failed: %w", err)
	}
	if calErr != nil {
		s.Logger.Error("Calendar write failed", zap.Error(calErr))
	} else {
		s.Logger.Info("Booking event added to calendar", zap.String("calendarId", s.CalendarID))
	}

	if s.SheetID == "" {
		sheetErr = errors.New("no spreadsheet configured")
	} else {
		vr := &sheets.ValueRange{Values: [][]interface{}{sheetRow(rec, time.Now())}}
		_, err := s.Sheets.Spreadsheets.Values.Append(s.SheetID, s.SheetRange, vr).
			ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			sheetErr = fmt.Errorf("sheet append failed: %w", err)
		}
	}
	if sheetErr != nil {
		s.Logger.Error("Spreadsheet write failed", zap.Error(sheetErr))
	} else {
		s.Logger.Info("Booking row appended to sheet", zap.String("sheetId", s.SheetID))
	}

	return errors.Join(calErr, sheetErr)
}

// NoopSaver stands in when Google credentials are absent: bookings still
// confirm to the customer, the write is just skipped with a log line.
type NoopSaver struct {
	Logger *zap.Logger
}

func (s *NoopSaver) Save(_ context.Context, rec models.BookingRecord) error {
	s.Logger.Warn("Google persistence disabled, booking not exported",
		zap.String("date", rec.Date),
		zap.String("email", rec.Email),
	)
	return nil
}
