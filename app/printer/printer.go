package printer

import (
	"fmt"

	"github.com/google/gousb"
	"github.com/hennedo/escpos"

	"taskprinter/app/config"
)

// Device is the minimal surface the print service needs from an ESC/POS
// printer: set emphasis, write a text line, cut the paper. Style and text
// calls are buffered; Cut flushes everything to the device and reports
// the first transport error.
type Device interface {
	Bold(on bool)
	WriteLine(text string)
	Cut() error
}

// OpenFunc opens a Device from printer configuration. Tests substitute
// their own.
type OpenFunc func(cfg config.Printer) (Device, error)

// Open connects to the USB printer identified by the configured vendor
// and product IDs and wraps it in an ESC/POS session. The handle lives
// for the rest of the process; there is no reconnect logic.
func Open(cfg config.Printer) (Device, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(cfg.VendorID), gousb.ID(cfg.ProductID))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("open usb device %s:%s: %w", cfg.VendorID, cfg.ProductID, err)
	}
	if dev == nil {
		ctx.Close()
		return nil, fmt.Errorf("usb device %s:%s not found", cfg.VendorID, cfg.ProductID)
	}

	// The kernel usblp driver usually owns the printer; take it over.
	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("auto-detach kernel driver: %w", err)
	}

	confNum, err := dev.ActiveConfigNum()
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("read active usb configuration: %w", err)
	}
	conf, err := dev.Config(confNum)
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("claim usb configuration %d: %w", confNum, err)
	}
	intf, err := conf.Interface(cfg.Interface, 0)
	if err != nil {
		conf.Close()
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("claim usb interface %d: %w", cfg.Interface, err)
	}

	out, err := outEndpoint(intf)
	if err != nil {
		intf.Close()
		conf.Close()
		dev.Close()
		ctx.Close()
		return nil, err
	}

	return &usbDevice{
		ctx:  ctx,
		dev:  dev,
		conf: conf,
		intf: intf,
		p:    escpos.New(out),
	}, nil
}

func outEndpoint(intf *gousb.Interface) (*gousb.OutEndpoint, error) {
	for _, ed := range intf.Setting.Endpoints {
		if ed.Direction == gousb.EndpointDirectionOut {
			return intf.OutEndpoint(ed.Number)
		}
	}
	return nil, fmt.Errorf("interface %d has no OUT endpoint", intf.Setting.Number)
}

// usbDevice holds every libusb handle alive for the process lifetime and
// drives the printer through the ESC/POS encoder.
type usbDevice struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	conf *gousb.Config
	intf *gousb.Interface
	p    *escpos.Escpos
}

func (d *usbDevice) Bold(on bool) {
	d.p.Bold(on)
}

func (d *usbDevice) WriteLine(text string) {
	d.p.Write(text)
	d.p.LineFeed()
}

func (d *usbDevice) Cut() error {
	return d.p.PrintAndCut()
}
