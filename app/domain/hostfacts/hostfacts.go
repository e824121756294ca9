// SPDX-FileCopyrightText: Copyright (c) 2024-2026, PayGlobal, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package hostfacts gathers the facts about the host that the validation
// rules consume: machine resources measured live, and the web-server
// topology loaded from a site inventory file.
//
// Every fact is optional. A probe that fails leaves its field nil and
// logs a warning; the rules treat missing data as WARNING, never FAIL.
package hostfacts

import (
	"context"
	"math"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	logging "github.com/payglobal/ess-validator/app/logging/validator"
	"github.com/payglobal/ess-validator/app/types"
)

const bytesPerGB = 1 << 30

// Collector measures host resources.
type Collector struct {
	logger *logrus.Entry

	// diskPath is the volume measured for free space.
	diskPath string
}

func NewCollector(ctx context.Context) *Collector {
	return &Collector{
		logger: logging.NewLogger().
			WithContext(ctx).WithField(logging.OpField, "hostfacts"),
		diskPath: systemDrive(),
	}
}

// CollectResources measures disk, memory, and CPU facts into the given
// facts structure. The probes run concurrently; each failure is logged
// and leaves its field nil.
func (c *Collector) CollectResources(ctx context.Context, facts *types.HostFacts) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		usage, err := disk.UsageWithContext(gctx, c.diskPath)
		if err != nil {
			c.logger.WithError(err).Warn("disk usage probe failed")
			return nil
		}
		free := roundGB(usage.Free)
		total := roundGB(usage.Total)
		facts.DiskFreeGB = &free
		facts.DiskTotalGB = &total
		return nil
	})

	g.Go(func() error {
		vm, err := mem.VirtualMemoryWithContext(gctx)
		if err != nil {
			c.logger.WithError(err).Warn("memory probe failed")
			return nil
		}
		total := roundGB(vm.Total)
		facts.MemoryGB = &total
		return nil
	})

	g.Go(func() error {
		count, err := cpu.CountsWithContext(gctx, true)
		if err != nil {
			c.logger.WithError(err).Warn("core count probe failed")
			return nil
		}
		facts.CoreCount = &count
		return nil
	})

	g.Go(func() error {
		infos, err := cpu.InfoWithContext(gctx)
		if err != nil || len(infos) == 0 {
			c.logger.WithError(err).Warn("cpu info probe failed")
			return nil
		}
		var sum float64
		for _, info := range infos {
			sum += info.Mhz
		}
		ghz := math.Round(sum/float64(len(infos))) / 1000
		facts.AverageClockGHz = &ghz
		return nil
	})

	// probes swallow their own errors, so Wait only synchronizes
	_ = g.Wait()
}

func roundGB(bytes uint64) float64 {
	return math.Round(float64(bytes)/bytesPerGB*100) / 100
}

func systemDrive() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}
