package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/oclkit/cl-runtime/clnative"
	"github.com/oclkit/cl-runtime/query"
)

func main() {
	var (
		platformIdx = flag.Int("platform", -1, "Platform index to inspect")
		deviceIdx   = flag.Int("device", -1, "Device index to inspect")
		paramName   = flag.String("param", "", "Single param to query (e.g. CL_DEVICE_NAME)")
		list        = flag.Bool("list", false, "List platforms and devices and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		query.SetLogger(logger)
		clnative.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*platformIdx, *deviceIdx, *paramName, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(platformIdx, deviceIdx int, paramName string, listOnly bool) error {
	platforms, err := clnative.Platforms()
	if err != nil {
		return err
	}
	if len(platforms) == 0 {
		return fmt.Errorf("no OpenCL platforms found")
	}

	if listOnly || platformIdx < 0 {
		return listAll(platforms)
	}

	if platformIdx >= len(platforms) {
		return fmt.Errorf("platform index %d out of range (%d platforms)", platformIdx, len(platforms))
	}
	platform := platforms[platformIdx]

	if deviceIdx < 0 {
		return dumpParams(clnative.PlatformSource(platform), query.PlatformParams(), paramName)
	}

	devices, err := clnative.Devices(platform, clnative.DeviceTypeAll)
	if err != nil {
		return err
	}
	if deviceIdx >= len(devices) {
		return fmt.Errorf("device index %d out of range (%d devices)", deviceIdx, len(devices))
	}
	return dumpParams(clnative.DeviceSource(devices[deviceIdx]), query.DeviceParams(), paramName)
}

func listAll(platforms []clnative.PlatformID) error {
	for i, platform := range platforms {
		src := clnative.PlatformSource(platform)
		name := renderInfo(src, query.PlatformName)
		version := renderInfo(src, query.PlatformVersion)
		fmt.Printf("Platform #%d: %s (%s)\n", i, name, version)

		devices, err := clnative.Devices(platform, clnative.DeviceTypeAll)
		if err != nil {
			return err
		}
		for j, device := range devices {
			dsrc := clnative.DeviceSource(device)
			fmt.Printf("  Device #%d: %s [%s]\n", j,
				renderInfo(dsrc, query.DeviceName),
				renderInfo(dsrc, query.DeviceVersion))
		}
	}
	return nil
}

func dumpParams(src query.Func, table []query.Param, only string) error {
	if only != "" {
		for _, p := range table {
			if strings.EqualFold(p.Name, only) {
				info, err := query.GetInfo(src, p.ID)
				if err != nil {
					return err
				}
				fmt.Printf("%s: %s\n", p.Name, info)
				return nil
			}
		}
		return fmt.Errorf("unknown param %q", only)
	}

	for _, p := range table {
		info, err := query.GetInfo(src, p.ID)
		if err != nil {
			// Optional params (extensions, partitioning) legitimately
			// fail on devices that lack them; show the failure and go on.
			fmt.Printf("%-42s <%v>\n", p.Name, err)
			continue
		}
		fmt.Printf("%-42s %s\n", p.Name, info)
	}
	return nil
}

func renderInfo(src query.Func, param uint32) string {
	info, err := query.GetInfo(src, param)
	if err != nil {
		return "?"
	}
	return info.String()
}
