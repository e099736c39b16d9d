// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/relabs-tech/lsm6dso32/internal/config"
	"github.com/relabs-tech/lsm6dso32/internal/imu"
	"github.com/relabs-tech/lsm6dso32/internal/lsm6dso32"
	"github.com/relabs-tech/lsm6dso32/internal/profile"
	"github.com/relabs-tech/lsm6dso32/internal/sensors"
)

// RegisterDevice is what the register debug tool drives.
// *sensors.IMUManager implements it.
type RegisterDevice interface {
	profile.Accessor
	ReadAllRegisters(bank lsm6dso32.Bank) (map[byte]byte, error)
	ReadSample() (imu.Sample, error)
}

// RegisterDebugSession holds WebSocket connection state for register debugging
type RegisterDebugSession struct {
	Conn        *websocket.Conn
	dev         RegisterDevice
	allowWrites bool
}

// Response types
type RegisterResponse struct {
	Type        string                 `json:"type"` // "register_data", "page_data", "register_map", "status", "error"
	Bank        string                 `json:"bank,omitempty"`
	Address     string                 `json:"addr,omitempty"`
	Value       string                 `json:"value,omitempty"`
	Values      []string               `json:"values,omitempty"`    // page reads
	Registers   map[string]string      `json:"registers,omitempty"` // for bulk read
	Timestamp   string                 `json:"timestamp,omitempty"`
	Message     string                 `json:"message,omitempty"`
	Count       int                    `json:"count,omitempty"`
	Config      string                 `json:"config,omitempty"`
	Filename    string                 `json:"filename,omitempty"`
	RegisterMap []sensors.RegisterInfo `json:"register_map,omitempty"`
}

// Registers the driver manages itself; use the page actions instead.
var managedRegisters = map[string]bool{
	"FUNC_CFG_ACCESS": true,
	"PAGE_SEL":        true,
	"PAGE_ADDRESS":    true,
	"PAGE_VALUE":      true,
	"PAGE_RW":         true,
}

const maxPageRead = 64

// NewRegisterDebugHandler serves the register debug WebSocket protocol for
// dev. Writes are refused unless allowWrites is set.
func NewRegisterDebugHandler(dev RegisterDevice, allowWrites bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("register_debug: websocket upgrade error: %v", err)
			return
		}
		defer conn.Close()

		session := &RegisterDebugSession{Conn: conn, dev: dev, allowWrites: allowWrites}

		// Send the user bank map on connection
		if err := session.sendRegisterMap(lsm6dso32.UserBank); err != nil {
			log.Printf("register_debug: error sending register map: %v", err)
			return
		}
		session.serve()
	}
}

// HandleRegisterDebugWS drives the global IMU manager.
func HandleRegisterDebugWS(w http.ResponseWriter, r *http.Request) {
	NewRegisterDebugHandler(sensors.GetIMUManager(), config.Get().RegisterDebugWrites)(w, r)
}

func (s *RegisterDebugSession) serve() {
	for {
		var rawMsg map[string]interface{}
		err := s.Conn.ReadJSON(&rawMsg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("register_debug: websocket error: %v", err)
			}
			return
		}

		action, ok := rawMsg["action"].(string)
		if !ok {
			s.sendError("missing or invalid action field")
			continue
		}

		bank, err := bankField(rawMsg)
		if err != nil {
			s.sendError(err.Error())
			continue
		}

		// Route based on action
		switch action {
		case "get_map":
			if err := s.sendRegisterMap(bank); err != nil {
				log.Printf("register_debug: error sending register map: %v", err)
			}
		case "read":
			s.handleRead(bank, rawMsg)
		case "read_all":
			s.handleReadAll(bank)
		case "write":
			s.handleWrite(bank, rawMsg)
		case "page_read":
			s.handlePageRead(rawMsg)
		case "page_write":
			s.handlePageWrite(rawMsg)
		case "export_config":
			s.handleExportConfig()
		case "import_config":
			s.handleImportConfig(rawMsg)
		default:
			s.sendError(fmt.Sprintf("unknown action: %s", action))
		}
	}
}

// bankField reads the optional "bank" field, defaulting to the user bank.
func bankField(rawMsg map[string]interface{}) (lsm6dso32.Bank, error) {
	name, _ := rawMsg["bank"].(string)
	if name == "" {
		return lsm6dso32.UserBank, nil
	}
	return lsm6dso32.ParseBank(name)
}

func parseHex(s string, bits int) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	return strconv.ParseUint(s, 0, bits)
}

func (s *RegisterDebugSession) handleRead(bank lsm6dso32.Bank, rawMsg map[string]interface{}) {
	addr, _ := rawMsg["addr"].(string)
	a, err := parseHex(addr, 8)
	if err != nil {
		s.sendError(fmt.Sprintf("invalid address format: %q", addr))
		return
	}

	value, err := s.dev.ReadRegister(bank, byte(a))
	if err != nil {
		s.sendError(fmt.Sprintf("read error: %v", err))
		return
	}

	s.send(RegisterResponse{
		Type:      "register_data",
		Bank:      bank.String(),
		Address:   fmt.Sprintf("0x%02X", a),
		Value:     fmt.Sprintf("0x%02X", value),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (s *RegisterDebugSession) handleReadAll(bank lsm6dso32.Bank) {
	registers, err := s.dev.ReadAllRegisters(bank)
	if err != nil {
		s.sendError(fmt.Sprintf("read all error: %v", err))
		return
	}

	// Convert to hex string map
	regMap := make(map[string]string, len(registers))
	for addr, value := range registers {
		regMap[fmt.Sprintf("0x%02X", addr)] = fmt.Sprintf("0x%02X", value)
	}

	s.send(RegisterResponse{
		Type:      "register_data",
		Bank:      bank.String(),
		Registers: regMap,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (s *RegisterDebugSession) handleWrite(bank lsm6dso32.Bank, rawMsg map[string]interface{}) {
	if !s.allowWrites {
		s.sendError("register writes disabled (REGISTER_DEBUG_WRITES=false)")
		return
	}
	addr, _ := rawMsg["addr"].(string)
	valueStr, _ := rawMsg["value"].(string)

	a, err := parseHex(addr, 8)
	if err != nil {
		s.sendError(fmt.Sprintf("invalid address format: %q", addr))
		return
	}
	v, err := parseHex(valueStr, 8)
	if err != nil {
		s.sendError(fmt.Sprintf("invalid value format: %q", valueStr))
		return
	}

	info, ok := sensors.LookupRegister(bank, byte(a))
	if !ok || !strings.Contains(info.Access, "W") {
		s.sendError(fmt.Sprintf("%s register 0x%02X is not writable", bank, a))
		return
	}
	if managedRegisters[info.Name] {
		s.sendError(fmt.Sprintf("%s is managed by the driver", info.Name))
		return
	}

	if err := s.dev.WriteRegister(bank, byte(a), byte(v)); err != nil {
		s.sendError(fmt.Sprintf("write error: %v", err))
		return
	}
	log.Printf("register_debug: wrote %s %s = 0x%02X", bank, info.Name, v)

	s.send(RegisterResponse{
		Type:      "register_data",
		Bank:      bank.String(),
		Address:   fmt.Sprintf("0x%02X", a),
		Value:     fmt.Sprintf("0x%02X", v),
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   "write successful",
	})
}

func (s *RegisterDebugSession) handlePageRead(rawMsg map[string]interface{}) {
	addr, _ := rawMsg["addr"].(string)
	a, err := parseHex(addr, 12)
	if err != nil {
		s.sendError(fmt.Sprintf("invalid page address: %q", addr))
		return
	}
	n := 1
	if l, ok := rawMsg["len"].(float64); ok {
		n = int(l)
	}
	if n < 1 || n > maxPageRead {
		s.sendError(fmt.Sprintf("len must be 1..%d", maxPageRead))
		return
	}

	buf, err := s.dev.ReadPage(uint16(a), n)
	if err != nil {
		s.sendError(fmt.Sprintf("page read error: %v", err))
		return
	}
	values := make([]string, len(buf))
	for i, b := range buf {
		values[i] = fmt.Sprintf("0x%02X", b)
	}
	s.send(RegisterResponse{
		Type:      "page_data",
		Address:   fmt.Sprintf("0x%03X", a),
		Values:    values,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (s *RegisterDebugSession) handlePageWrite(rawMsg map[string]interface{}) {
	if !s.allowWrites {
		s.sendError("register writes disabled (REGISTER_DEBUG_WRITES=false)")
		return
	}
	addr, _ := rawMsg["addr"].(string)
	a, err := parseHex(addr, 12)
	if err != nil {
		s.sendError(fmt.Sprintf("invalid page address: %q", addr))
		return
	}
	raw, _ := rawMsg["values"].([]interface{})
	if len(raw) == 0 || len(raw) > maxPageRead {
		s.sendError(fmt.Sprintf("values must hold 1..%d bytes", maxPageRead))
		return
	}
	buf := make([]byte, len(raw))
	for i, r := range raw {
		str, _ := r.(string)
		v, err := parseHex(str, 8)
		if err != nil {
			s.sendError(fmt.Sprintf("invalid value format: %q", str))
			return
		}
		buf[i] = byte(v)
	}

	if err := s.dev.WritePage(uint16(a), buf); err != nil {
		s.sendError(fmt.Sprintf("page write error: %v", err))
		return
	}
	log.Printf("register_debug: wrote %d bytes at page address 0x%03X", len(buf), a)

	s.send(RegisterResponse{
		Type:      "page_data",
		Address:   fmt.Sprintf("0x%03X", a),
		Count:     len(buf),
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   "write successful",
	})
}

func (s *RegisterDebugSession) handleExportConfig() {
	p, err := profile.Capture(s.dev)
	if err != nil {
		s.sendError(fmt.Sprintf("export error: %v", err))
		return
	}
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		s.sendError(fmt.Sprintf("export error: %v", err))
		return
	}

	s.send(RegisterResponse{
		Type:     "export_config",
		Message:  "config exported",
		Count:    len(p.Pages) + len(p.Registers),
		Config:   buf.String(),
		Filename: fmt.Sprintf("lsm6dso32_%s.yaml", time.Now().Format("20060102_150405")),
	})
}

func (s *RegisterDebugSession) handleImportConfig(rawMsg map[string]interface{}) {
	if !s.allowWrites {
		s.sendError("register writes disabled (REGISTER_DEBUG_WRITES=false)")
		return
	}
	doc, _ := rawMsg["config"].(string)
	p, err := profile.Decode(strings.NewReader(doc))
	if err != nil {
		s.sendError(fmt.Sprintf("import error: %v", err))
		return
	}
	n, err := p.Apply(s.dev)
	if err != nil {
		s.sendError(fmt.Sprintf("import stopped after %d writes: %v", n, err))
		return
	}
	log.Printf("register_debug: imported profile, %d writes", n)

	s.send(RegisterResponse{
		Type:    "status",
		Count:   n,
		Message: "config imported",
	})
}

func (s *RegisterDebugSession) sendRegisterMap(bank lsm6dso32.Bank) error {
	return s.Conn.WriteJSON(RegisterResponse{
		Type:        "register_map",
		Bank:        bank.String(),
		RegisterMap: sensors.RegisterMap(bank),
	})
}

func (s *RegisterDebugSession) sendError(message string) {
	s.send(RegisterResponse{
		Type:    "error",
		Message: message,
	})
}

// send writes resp to the client. A failed write is logged; the read loop
// then ends on the broken connection.
func (s *RegisterDebugSession) send(resp RegisterResponse) {
	if err := s.Conn.WriteJSON(resp); err != nil {
		log.Printf("register_debug: error sending %s: %v", resp.Type, err)
	}
}

// NewIMUDataHandler serves one converted sample per request.
func NewIMUDataHandler(dev RegisterDevice) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		smp, err := dev.ReadSample()
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(smp)
	}
}

// HandleIMUData serves live IMU data via REST API
func HandleIMUData(w http.ResponseWriter, r *http.Request) {
	NewIMUDataHandler(sensors.GetIMUManager())(w, r)
}

// RunRegisterDebug serves the register debug tool until the listener fails.
func RunRegisterDebug() error {
	cfg := config.Get()

	log.Println("Initializing IMU manager...")
	imuManager := sensors.GetIMUManager()
	if err := imuManager.Init(); err != nil {
		log.Printf("Warning: IMU initialization failed: %v", err)
		log.Println("Continuing anyway - requests will report the IMU as unavailable")
	} else {
		log.Printf("IMU available: %s", imuManager)
	}
	if cfg.RegisterDebugWrites {
		log.Println("Warning: register writes enabled")
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", NewRegisterDebugHandler(imuManager, cfg.RegisterDebugWrites))

	// API endpoint for live IMU data
	mux.Handle("GET /api/imu", NewIMUDataHandler(imuManager))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "web/register_debug.html")
	})

	addr := fmt.Sprintf(":%d", cfg.RegisterDebugPort)
	log.Printf("Register debug tool listening on %s", addr)
	log.Printf("Open http://localhost%s in your browser", addr)
	return http.ListenAndServe(addr, mux)
}
