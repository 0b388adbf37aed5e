package collect

import (
	"bufio"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"sysreport/internal/model"
)

// GPUProvider is a capability provider for GPU telemetry. Callers
// branch on Supported rather than on error types; a host without any
// provider is a normal state.
type GPUProvider interface {
	Supported() bool
	Devices() ([]model.GPU, error)
}

const gpuQueryTimeout = 2 * time.Second

// detectGPU probes for a usable query tool. Only nvidia-smi is
// recognized today.
func detectGPU() GPUProvider {
	path, err := exec.LookPath("nvidia-smi")
	if err != nil {
		return noGPU{}
	}
	return &nvidiaSMI{path: path}
}

func gpuSection(provider GPUProvider) model.GPUSection {
	if !provider.Supported() {
		return model.GPUSection{
			Available: false,
			Note:      "no GPU query tool found (nvidia-smi is required for GPU info)",
		}
	}

	gpus, err := provider.Devices()
	if err != nil {
		return model.GPUSection{Available: false, Err: err.Error()}
	}
	return model.GPUSection{Available: true, GPUs: gpus}
}

type noGPU struct{}

func (noGPU) Supported() bool               { return false }
func (noGPU) Devices() ([]model.GPU, error) { return nil, nil }

// nvidiaSMI shells out to the driver CLI with a hard timeout so a hung
// driver cannot stall the whole run.
type nvidiaSMI struct {
	path string
}

func (*nvidiaSMI) Supported() bool { return true }

func (g *nvidiaSMI) Devices() ([]model.GPU, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gpuQueryTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, g.path,
		"--query-gpu=index,name,utilization.gpu,memory.used,memory.total,memory.free,temperature.gpu",
		"--format=csv,noheader,nounits").Output()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	return parseNvidiaSMI(string(out)), nil
}

func parseNvidiaSMI(out string) []model.GPU {
	var gpus []model.GPU
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		fields := strings.Split(sc.Text(), ",")
		if len(fields) < 7 {
			continue
		}
		id, _ := strconv.Atoi(strings.TrimSpace(fields[0]))
		g := model.GPU{
			ID:          id,
			Name:        strings.TrimSpace(fields[1]),
			LoadPercent: parseSMIFloat(fields[2]),
			MemUsedMB:   parseSMIFloat(fields[3]),
			MemTotalMB:  parseSMIFloat(fields[4]),
			MemFreeMB:   parseSMIFloat(fields[5]),
		}
		if g.MemTotalMB > 0 {
			g.MemUtilPct = round2(g.MemUsedMB / g.MemTotalMB * 100)
		}
		if temp, err := strconv.ParseFloat(strings.TrimSpace(fields[6]), 64); err == nil {
			g.TemperatureC = &temp
		}
		gpus = append(gpus, g)
	}
	return gpus
}

func parseSMIFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}
