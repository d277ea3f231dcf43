package monitoring

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwblocks/edma/dma"
)

type fakeController struct {
	name   string
	status dma.ControllerStatus
}

func (c *fakeController) Name() string                 { return c.name }
func (c *fakeController) Status() dma.ControllerStatus { return c.status }

func TestRegisterController(t *testing.T) {
	m := NewMonitor()

	m.RegisterController(&fakeController{name: "Memcpy.1"})
	m.RegisterController(&fakeController{name: "Memcpy.2"})

	assert.Len(t, m.controllers, 2)
}

func TestListControllers(t *testing.T) {
	m := NewMonitor()
	m.RegisterController(&fakeController{name: "Memcpy.1"})
	m.RegisterController(&fakeController{name: "Memcpy.2"})

	w := httptest.NewRecorder()
	m.listControllers(w, nil)

	var names []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	assert.Equal(t, []string{"Memcpy.1", "Memcpy.2"}, names)
}

func TestListTransfers(t *testing.T) {
	m := NewMonitor()
	m.RegisterController(&fakeController{
		name: "Memcpy.1",
		status: dma.ControllerStatus{
			Transfers: 5,
			Completes: 3,
			Cancels:   1,
		},
	})

	w := httptest.NewRecorder()
	m.listTransfers(w, nil)

	var rsp []transferRsp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rsp))
	require.Len(t, rsp, 1)
	assert.Equal(t, "Memcpy.1", rsp[0].Controller)
	assert.Equal(t, uint64(5), rsp[0].Transfers)
	assert.Equal(t, uint64(3), rsp[0].Completes)
	assert.Equal(t, uint64(1), rsp[0].Cancels)
}

func TestUnknownControllerIs404(t *testing.T) {
	m := NewMonitor()

	w := httptest.NewRecorder()
	c := m.findControllerOr404(w, "Memcpy.9")

	assert.Nil(t, c)
	assert.Equal(t, 404, w.Code)
}

func TestWithPortNumberRejectsPrivilegedPorts(t *testing.T) {
	m := NewMonitor().WithPortNumber(80)

	assert.Equal(t, 0, m.portNumber)
}
