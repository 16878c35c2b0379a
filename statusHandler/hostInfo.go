package statusHandler

import (
	"fmt"
	"runtime"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-tax-ledger-go/common"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// HostInfo holds the relevant parameters of the machine running the ledger node
type HostInfo struct {
	AppVersion      string `json:"appVersion"`
	CPUModel        string `json:"cpuModel"`
	CPUNumLogical   int    `json:"cpuNumLogical"`
	CPUMaxFreqInMHz int    `json:"cpuMaxFreqInMHz"`
	MemorySize      string `json:"memorySize"`
	GoVersion       string `json:"goVersion"`
}

// GetHostInfo is able to get all the known parameters of a host
func GetHostInfo(appVersion string) *HostInfo {
	hi := &HostInfo{
		AppVersion: appVersion,
		GoVersion:  runtime.Version(),
	}

	applyCpuInfo(hi)
	applyMemInfo(hi)

	return hi
}

func applyCpuInfo(hi *HostInfo) {
	rawCpuInfo, err := cpu.Info()
	if err != nil {
		hi.CPUModel = fmt.Sprintf("[ERR:%s]", err)
		return
	}

	if len(rawCpuInfo) == 0 {
		hi.CPUModel = "[ERR:no logical cpus]"
		return
	}

	hi.CPUNumLogical = len(rawCpuInfo)
	hi.CPUModel = rawCpuInfo[0].ModelName
	hi.CPUMaxFreqInMHz = int(rawCpuInfo[0].Mhz)
}

func applyMemInfo(hi *HostInfo) {
	vms, err := mem.VirtualMemory()
	if err != nil {
		hi.MemorySize = fmt.Sprintf("[ERR:%s]", err)
		return
	}

	hi.MemorySize = core.ConvertBytes(vms.Total)
}

// UpdateMemoryMetrics writes the current memory usage of the process and the host
func UpdateMemoryMetrics(ash core.AppStatusHandler) {
	memStats := runtime.MemStats{}
	runtime.ReadMemStats(&memStats)

	ash.SetUInt64Value(common.MetricMemHeapInUse, memStats.HeapInuse)
	ash.SetUInt64Value(common.MetricNumGoRoutines, uint64(runtime.NumGoroutine()))

	vms, err := mem.VirtualMemory()
	if err != nil {
		log.Debug("cannot read virtual memory", "error", err.Error())
		return
	}
	ash.SetUInt64Value(common.MetricMemTotal, vms.Total)
}
