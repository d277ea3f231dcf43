// Package monitoring turns a set of live DMA controllers into a small HTTP
// server for external inspection.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/hwblocks/edma/dma"
)

// A Controller is a monitorable DMA controller.
type Controller interface {
	Name() string
	Status() dma.ControllerStatus
}

// A Monitor serves the state of registered controllers over HTTP.
type Monitor struct {
	controllers []Controller
	portNumber  int
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port the server listens on. Ports below 1000 are
// rejected and a random port is used instead.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the monitoring server. "+
				"Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterController adds a controller to be monitored.
func (m *Monitor) RegisterController(c Controller) {
	m.controllers = append(m.controllers, c)
}

// StartServer starts the monitor as a web server and returns the address
// it listens on.
func (m *Monitor) StartServer() string {
	r := mux.NewRouter()
	r.HandleFunc("/api/list_controllers", m.listControllers)
	r.HandleFunc("/api/controller/{name}", m.controllerDetails)
	r.HandleFunc("/api/transfers", m.listTransfers)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	addr := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring DMA controllers with %s\n", addr)

	go func() {
		err := http.Serve(listener, r)
		dieOnErr(err)
	}()

	return addr
}

func (m *Monitor) listControllers(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, c := range m.controllers {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "%q", c.Name())
	}
	fmt.Fprint(w, "]")
}

func (m *Monitor) controllerDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	controller := m.findControllerOr404(w, name)
	if controller == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(controller.Status())
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type transferRsp struct {
	Controller    string `json:"controller"`
	Transfers     uint64 `json:"transfers"`
	Completes     uint64 `json:"completes"`
	Cancels       uint64 `json:"cancels"`
	SetupFailures uint64 `json:"setup_failures"`
}

func (m *Monitor) listTransfers(w http.ResponseWriter, _ *http.Request) {
	rsp := make([]transferRsp, 0, len(m.controllers))
	for _, c := range m.controllers {
		s := c.Status()
		rsp = append(rsp, transferRsp{
			Controller:    c.Name(),
			Transfers:     s.Transfers,
			Completes:     s.Completes,
			Cancels:       s.Cancels,
			SetupFailures: s.SetupFailures,
		})
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	out, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(out)
	dieOnErr(err)
}

func (m *Monitor) findControllerOr404(
	w http.ResponseWriter,
	name string,
) Controller {
	var controller Controller
	for _, c := range m.controllers {
		if c.Name() == name {
			controller = c
		}
	}

	if controller == nil {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Controller not found"))
		dieOnErr(err)
	}

	return controller
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
