package services

import (
	"sync"

	"go.uber.org/zap"

	"taskprinter/app/config"
	"taskprinter/app/models"
	"taskprinter/app/printer"
)

// PrintService owns the printer handle and formats tasks for printing.
type PrintService struct {
	cfg    config.Printer
	open   printer.OpenFunc
	logger *zap.Logger

	mu  sync.Mutex
	dev printer.Device
}

// NewPrintService creates a PrintService that opens the USB printer on
// first use.
func NewPrintService(cfg config.Printer, logger *zap.Logger) *PrintService {
	return &PrintService{cfg: cfg, open: printer.Open, logger: logger}
}

// NewPrintServiceWithOpener is like NewPrintService with a custom device
// opener, used by tests.
func NewPrintServiceWithOpener(cfg config.Printer, open printer.OpenFunc, logger *zap.Logger) *PrintService {
	return &PrintService{cfg: cfg, open: open, logger: logger}
}

// EnsureReady opens the device if it has not been opened yet. It is
// called once at startup so that bad configuration or an unreachable
// printer is fatal before the server accepts traffic. Subsequent calls
// do nothing.
func (s *PrintService) EnsureReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLocked()
}

func (s *PrintService) ensureLocked() error {
	if s.dev != nil {
		return nil
	}
	dev, err := s.open(s.cfg)
	if err != nil {
		return err
	}
	s.dev = dev
	s.logger.Info("printer ready",
		zap.String("vendor_id", s.cfg.VendorID.String()),
		zap.String("product_id", s.cfg.ProductID.String()),
		zap.Int("interface", s.cfg.Interface),
		zap.String("profile", s.cfg.Profile),
	)
	return nil
}

// PrintTask sends one task to the printer: bold title, description, the
// created and due timestamps, then a paper cut. Each line gets an extra
// blank line after it. The mutex serializes concurrent requests so their
// bytes cannot interleave on the device.
func (s *PrintService) PrintTask(task models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLocked(); err != nil {
		return err
	}

	s.dev.Bold(true)
	s.dev.WriteLine(task.Title + "\n")
	s.dev.Bold(false)

	lines := []string{
		task.Description,
		"Created: " + task.CreatedOn.Receipt(),
		"Due:     " + task.DueBy.Receipt(),
	}
	for _, line := range lines {
		s.dev.WriteLine(line + "\n")
	}

	return s.dev.Cut()
}
