// Command modulectl drives a ToffeeStudio module from the host: remote
// filesystem management, display image upload, and bulk file dump over the
// CDC interface.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ToffeeStudio/go-module/device"
	"github.com/ToffeeStudio/go-module/dump"
	"github.com/ToffeeStudio/go-module/rgb565"
	"github.com/ToffeeStudio/go-module/transport"
)

// Module USB identity.
const (
	defaultVID       = 0x1067
	defaultPID       = 0x626D
	defaultUsagePage = 0xFF60
	defaultUsage     = 0x61

	cdcProductSubstring = "Module CDC Interface"
)

func main() {
	var (
		ls         = flag.Bool("ls", false, "list the remote directory")
		cd         = flag.String("cd", "", "change the remote working directory")
		pwd        = flag.Bool("pwd", false, "print the remote working directory")
		rm         = flag.String("rm", "", "remove a remote file or directory")
		mkdir      = flag.String("mkdir", "", "create a remote directory")
		touch      = flag.String("touch", "", "create an empty remote file")
		cat        = flag.String("cat", "", "print a remote file's contents")
		push       = flag.String("push", "", "copy a local file to the module")
		pushImage  = flag.String("push-image", "", "convert a local image and store it on the module")
		showImage  = flag.String("show-image", "", "convert a local image and draw it on the display now")
		testImage  = flag.Bool("test-image", false, "store a color-bars test image")
		testAnim   = flag.Bool("test-anim", false, "store an animated test pattern")
		format     = flag.Bool("format", false, "reformat the module filesystem")
		flashFree  = flag.Bool("flash-remaining", false, "print free flash space")
		choose     = flag.String("choose-image", "", "select the stored image to display")
		setTime    = flag.Bool("set-time", false, "sync the module clock to this machine")
		wpmRange   = flag.String("set-wpm", "", "set the WPM gauge range, e.g. 40:160")
		doDump     = flag.Bool("dump", false, "dump every module file over CDC")
		outDir     = flag.String("out", "module-dump", "output directory for -dump")
		port       = flag.String("port", "", "serial port override for -dump (skips discovery)")
		vidFlag    = flag.String("vid", fmt.Sprintf("%04X", defaultVID), "USB vendor ID override, hex")
		pidFlag    = flag.String("pid", fmt.Sprintf("%04X", defaultPID), "USB product ID override, hex")
		quantize   = flag.Bool("quantize", false, "snap image colors to the module palette")
		background = flag.String("bg", "0,0,0", "background color for transparency, R,G,B")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	log.Logger = logger

	bg, err := parseBackground(*background)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -bg")
	}

	vid, err := parseUSBID(*vidFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -vid")
	}
	pid, err := parseUSBID(*pidFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -pid")
	}

	t, err := transport.OpenHID(transport.HIDSelector{
		VendorID:  vid,
		ProductID: pid,
		UsagePage: defaultUsagePage,
		Usage:     defaultUsage,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("module not found")
	}
	defer t.Close()
	logger.Debug().Str("path", t.Path()).Msg("module connected")

	c := device.New(t, device.WithLogger(logger))

	switch {
	case *ls:
		entries, err := c.List()
		if err != nil {
			logger.Warn().Err(err).Msg("listing incomplete")
		}
		for _, entry := range entries {
			fmt.Println(entry)
		}
	case *cd != "":
		fail(logger, "cd", c.ChangeDir(*cd))
	case *pwd:
		dir, err := c.WorkingDir()
		fail(logger, "pwd", err)
		fmt.Println(dir)
	case *rm != "":
		fail(logger, "rm", c.Remove(*rm))
	case *mkdir != "":
		fail(logger, "mkdir", c.MakeDir(*mkdir))
	case *touch != "":
		fail(logger, "touch", c.Touch(*touch))
	case *cat != "":
		data, err := c.ReadFile(*cat)
		fail(logger, "cat", err)
		os.Stdout.Write(data)
	case *push != "":
		data, err := os.ReadFile(*push)
		fail(logger, "push", err)
		fail(logger, "push", c.WriteFile(filepath.Base(*push), data))
		logger.Info().Str("file", filepath.Base(*push)).Int("bytes", len(data)).Msg("pushed")
	case *pushImage != "":
		data, err := convertImage(*pushImage, *quantize, bg)
		fail(logger, "push-image", err)
		name := strings.TrimSuffix(filepath.Base(*pushImage), filepath.Ext(*pushImage)) + ".raw"
		fail(logger, "push-image", c.WriteFile(name, data))
		logger.Info().Str("file", name).Msg("image stored")
	case *showImage != "":
		data, err := convertImage(*showImage, *quantize, bg)
		fail(logger, "show-image", err)
		fail(logger, "show-image", c.WriteDisplay(data))
	case *testImage:
		data := rgb565.ColorBars(rgb565.PanelSize, rgb565.PanelSize)
		fail(logger, "test-image", c.WriteFile("test_image.raw", data))
	case *testAnim:
		data := rgb565.AnimatedBars(rgb565.PanelSize, rgb565.PanelSize, 12)
		fail(logger, "test-anim", c.WriteFile("test_anim.araw", data))
	case *format:
		fail(logger, "format", c.Format())
	case *flashFree:
		free, err := c.FlashRemaining()
		fail(logger, "flash-remaining", err)
		fmt.Printf("%d bytes free\n", free)
	case *choose != "":
		fail(logger, "choose-image", c.ChooseImage(*choose))
	case *setTime:
		now := time.Now()
		fail(logger, "set-time", c.SetTime(now.Hour(), now.Minute(), now.Second()))
	case *wpmRange != "":
		min, max, err := parseWPMRange(*wpmRange)
		fail(logger, "set-wpm", err)
		fail(logger, "set-wpm", c.SetWPMRange(min, max))
	case *doDump:
		runDump(logger, c, vid, pid, *port, *outDir)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// runDump wires both transports together: trigger over HID, receive over
// the CDC serial stream.
func runDump(logger zerolog.Logger, c *device.Client, vid, pid uint16, portName, outDir string) {
	if portName == "" {
		var err error
		portName, err = transport.FindPort(vid, pid, cdcProductSubstring, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("CDC port not found")
		}
	}

	stream, err := transport.OpenSerial(portName)
	if err != nil {
		logger.Fatal().Err(err).Msg("CDC port open failed")
	}
	defer stream.Close()

	result, err := dump.Run(c, stream, outDir, dump.WithLogger(logger))
	if err != nil {
		logger.Error().Err(err).
			Int("files_kept", result.FileCount).
			Msg("dump aborted, keeping files received so far")
	}
	fmt.Printf("received %d files, %d bytes, into %s\n", result.FileCount, result.ByteCount, outDir)
	if err != nil {
		os.Exit(1)
	}
}

// convertImage loads an image, scales it to the panel, and encodes it as a
// big-endian RGB565 stream.
func convertImage(path string, quantize bool, bg color.RGBA) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	scaled := rgb565.Scale(img, rgb565.PanelSize, rgb565.PanelSize)
	if quantize {
		return rgb565.EncodeImageQuantized(scaled, bg, nil), nil
	}
	return rgb565.EncodeImage(scaled, bg), nil
}

func parseBackground(s string) (color.RGBA, error) {
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("background color must be R,G,B: %w", err)
	}
	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return color.RGBA{}, fmt.Errorf("background channels must be 0-255")
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

// parseUSBID parses a hex USB vendor or product ID, with or without a
// leading "0x".
func parseUSBID(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	id, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("usb id must be 16-bit hex: %w", err)
	}
	return uint16(id), nil
}

func parseWPMRange(s string) (uint16, uint16, error) {
	var min, max uint16
	if _, err := fmt.Sscanf(s, "%d:%d", &min, &max); err != nil {
		return 0, 0, fmt.Errorf("wpm range must be MIN:MAX: %w", err)
	}
	return min, max, nil
}

func fail(logger zerolog.Logger, op string, err error) {
	if err != nil {
		logger.Fatal().Err(err).Msg(op + " failed")
	}
}
