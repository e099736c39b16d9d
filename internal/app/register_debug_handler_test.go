// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/relabs-tech/lsm6dso32/internal/imu"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32/lsm6dso32test"
	"github.com/relabs-tech/lsm6dso32/internal/sensors"
)

func attachedManager(t *testing.T) (*sensors.IMUManager, *lsm6dso32test.RegFile) {
	t.Helper()
	rf := lsm6dso32test.New()
	m := &sensors.IMUManager{}
	if err := m.Attach(rf, appConfig(t, "")); err != nil {
		t.Fatalf("Attach() = %v", err)
	}
	return m, rf
}

// dialDebug starts a register debug server and returns a connection past
// the initial register map.
func dialDebug(t *testing.T, dev RegisterDevice, allowWrites bool) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(NewRegisterDebugHandler(dev, allowWrites))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	var first RegisterResponse
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatal(err)
	}
	if first.Type != "register_map" || first.Bank != "user" || len(first.RegisterMap) == 0 {
		t.Fatalf("first message = %s %s, %d registers", first.Type, first.Bank, len(first.RegisterMap))
	}
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg map[string]any) RegisterResponse {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatal(err)
	}
	var resp RegisterResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestRegisterDebugRead(t *testing.T) {
	m, rf := attachedManager(t)
	rf.Set(lsm6dso32.EmbeddedFuncBank, lsm6dso32.RegEmbFuncEnA, 0x18)
	conn := dialDebug(t, m, false)

	resp := roundTrip(t, conn, map[string]any{"action": "read", "addr": "0x0F"})
	if resp.Type != "register_data" || resp.Value != "0x6C" {
		t.Errorf("WHO_AM_I read = %+v", resp)
	}

	resp = roundTrip(t, conn, map[string]any{"action": "read", "bank": "embedded", "addr": "0x04"})
	if resp.Value != "0x18" || resp.Bank != "embedded" {
		t.Errorf("EMB_FUNC_EN_A read = %+v", resp)
	}

	resp = roundTrip(t, conn, map[string]any{"action": "read_all", "bank": "user"})
	if resp.Registers["0x0F"] != "0x6C" {
		t.Errorf("read_all WHO_AM_I = %q", resp.Registers["0x0F"])
	}

	resp = roundTrip(t, conn, map[string]any{"action": "get_map", "bank": "sensor-hub"})
	if resp.Type != "register_map" || resp.Bank != "sensor-hub" {
		t.Errorf("get_map = %s %s", resp.Type, resp.Bank)
	}
}

func TestRegisterDebugErrors(t *testing.T) {
	m, _ := attachedManager(t)
	conn := dialDebug(t, m, true)

	tests := []struct {
		name string
		msg  map[string]any
		want string
	}{
		{"no action", map[string]any{"addr": "0x10"}, "missing or invalid action"},
		{"unknown", map[string]any{"action": "reboot"}, "unknown action"},
		{"bad bank", map[string]any{"action": "read", "bank": "main", "addr": "0x10"}, "main"},
		{"bad addr", map[string]any{"action": "read", "addr": "0x100"}, "invalid address"},
		{"read-only", map[string]any{"action": "write", "addr": "0x0F", "value": "0x00"}, "not writable"},
		{"bank select", map[string]any{"action": "write", "addr": "0x01", "value": "0x80"}, "managed by the driver"},
		{"page len", map[string]any{"action": "page_read", "addr": "0x100", "len": 65}, "len must be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := roundTrip(t, conn, tt.msg)
			if resp.Type != "error" || !strings.Contains(resp.Message, tt.want) {
				t.Errorf("response = %+v, want error containing %q", resp, tt.want)
			}
		})
	}
}

func TestRegisterDebugWritesGated(t *testing.T) {
	m, rf := attachedManager(t)
	conn := dialDebug(t, m, false)
	before := len(rf.Ops)

	for _, msg := range []map[string]any{
		{"action": "write", "addr": "0x10", "value": "0x40"},
		{"action": "page_write", "addr": "0x183", "values": []string{"0x0A"}},
		{"action": "import_config", "config": "version: 1\nregisters: []\n"},
	} {
		resp := roundTrip(t, conn, msg)
		if resp.Type != "error" || !strings.Contains(resp.Message, "writes disabled") {
			t.Errorf("%v: response = %+v", msg["action"], resp)
		}
	}
	if len(rf.Ops) != before {
		t.Errorf("%d bus ops while writes are disabled", len(rf.Ops)-before)
	}
}

func TestRegisterDebugWriteAndPages(t *testing.T) {
	m, rf := attachedManager(t)
	conn := dialDebug(t, m, true)

	resp := roundTrip(t, conn, map[string]any{"action": "write", "addr": "0x10", "value": "0x4C"})
	if resp.Message != "write successful" {
		t.Fatalf("write = %+v", resp)
	}
	if got := rf.Get(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL); got != 0x4C {
		t.Errorf("CTRL1_XL = 0x%02X", got)
	}

	resp = roundTrip(t, conn, map[string]any{"action": "page_write", "addr": "0x183", "values": []string{"0x0A", "0x0B"}})
	if resp.Count != 2 {
		t.Fatalf("page_write = %+v", resp)
	}
	if rf.Page[0x183] != 0x0A || rf.Page[0x184] != 0x0B {
		t.Errorf("page bytes = % X", rf.Page[0x183:0x185])
	}

	resp = roundTrip(t, conn, map[string]any{"action": "page_read", "addr": "0x183", "len": 2})
	if resp.Type != "page_data" || len(resp.Values) != 2 || resp.Values[1] != "0x0B" {
		t.Errorf("page_read = %+v", resp)
	}
}

func TestRegisterDebugExportImport(t *testing.T) {
	src, rf := attachedManager(t)
	rf.Set(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL, 0x5C)
	conn := dialDebug(t, src, false)

	exp := roundTrip(t, conn, map[string]any{"action": "export_config"})
	if exp.Type != "export_config" || !strings.Contains(exp.Config, "CTRL1_XL") || !strings.HasSuffix(exp.Filename, ".yaml") {
		t.Fatalf("export = %+v", exp)
	}

	dst, drf := attachedManager(t)
	conn2 := dialDebug(t, dst, true)
	imp := roundTrip(t, conn2, map[string]any{"action": "import_config", "config": exp.Config})
	if imp.Type != "status" || imp.Count != exp.Count {
		t.Fatalf("import = %+v, exported %d", imp, exp.Count)
	}
	if got := drf.Get(lsm6dso32.UserBank, lsm6dso32.RegCtrl1XL); got != 0x5C {
		t.Errorf("imported CTRL1_XL = 0x%02X", got)
	}

	bad := roundTrip(t, conn2, map[string]any{"action": "import_config", "config": "version: 9\n"})
	if bad.Type != "error" {
		t.Errorf("bad import = %+v", bad)
	}
}

func TestIMUDataHandler(t *testing.T) {
	m, rf := attachedManager(t)
	rf.Set(lsm6dso32.UserBank, lsm6dso32.RegOutXLA+4, 0x00)
	rf.Set(lsm6dso32.UserBank, lsm6dso32.RegOutXLA+5, 0x20)

	rec := httptest.NewRecorder()
	NewIMUDataHandler(m).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/imu", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var s imu.Sample
	if err := json.NewDecoder(rec.Body).Decode(&s); err != nil {
		t.Fatal(err)
	}
	if s.Raw.Az != 0x2000 || s.AccelFS != "4g" {
		t.Errorf("sample = %+v", s)
	}

	rec = httptest.NewRecorder()
	NewIMUDataHandler(&sensors.IMUManager{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/imu", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("detached status = %d", rec.Code)
	}
}

func TestRegisterDebugLogsFailedSend(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer close(done)
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		conn.Close()
		s := &RegisterDebugSession{Conn: conn}
		s.sendError("bus stuck")
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	<-done

	if !strings.Contains(logs.String(), "register_debug: error sending error:") {
		t.Errorf("log = %q, want the failed send", logs.String())
	}
}
