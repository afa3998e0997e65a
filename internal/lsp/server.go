package lsp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/leapstack-labs/pandalint/internal/config"
	"github.com/leapstack-labs/pandalint/pkg/design"
	"github.com/leapstack-labs/pandalint/pkg/lint"
)

// ErrExitWithoutShutdown is returned by Run when the client sends exit
// before shutdown.
var ErrExitWithoutShutdown = errors.New("exit received before shutdown")

// Server implements the Language Server Protocol for pandalint.
type Server struct {
	// Document management
	documents *DocumentStore

	// Fixes of the last published diagnostics, served as code actions
	fixes *fixCache

	// Project context
	projectRoot string
	initialized bool
	configErr   error

	// Design loader and analyzer, replaced when pandalint.yaml changes
	lintMu   sync.RWMutex
	loader   *design.Loader
	analyzer *lint.Analyzer

	// Design config watcher
	watchMu     sync.Mutex
	watcher     *design.Watcher
	watchCancel context.CancelFunc

	// I/O
	reader  *bufio.Reader
	writer  io.Writer
	writeMu sync.Mutex

	// Logging
	logger *slog.Logger

	// Shutdown state
	shutdown   bool
	exited     bool
	shutdownMu sync.RWMutex
}

// NewServer creates a new LSP server instance.
func NewServer(reader io.Reader, writer io.Writer) *Server {
	return NewServerWithLogger(reader, writer, nil)
}

// NewServerWithLogger creates a new LSP server instance with a custom logger.
func NewServerWithLogger(reader io.Reader, writer io.Writer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	recommended, _ := lint.Preset(lint.PresetRecommended)
	return &Server{
		documents: NewDocumentStore(),
		fixes:     newFixCache(),
		reader:    bufio.NewReader(reader),
		writer:    writer,
		logger:    logger,
		loader:    design.NewLoader(design.WithLogger(logger)),
		analyzer:  lint.NewAnalyzer(recommended),
	}
}

// Run starts the server's main loop, processing JSON-RPC messages until the
// client sends exit or closes the stream.
func (s *Server) Run() error {
	s.logger.Info("pandalint LSP server starting...")
	defer s.stopWatcher()

	for {
		s.shutdownMu.RLock()
		exited, shutdown := s.exited, s.shutdown
		s.shutdownMu.RUnlock()
		if exited {
			if !shutdown {
				return ErrExitWithoutShutdown
			}
			return nil
		}

		// Read message
		msg, err := s.readMessage()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				s.logger.Info("Client disconnected")
				return nil
			}
			s.logger.Error("Error reading message", "error", err)
			continue
		}

		// Handle message
		if err := s.handleMessage(msg); err != nil {
			s.logger.Error("Error handling message", "error", err)
		}
	}
}

// JSONRPCMessage represents a JSON-RPC 2.0 message.
type JSONRPCMessage struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method,omitempty"`
	Params  json.RawMessage  `json:"params,omitempty"`
	Result  json.RawMessage  `json:"result,omitempty"`
	Error   *JSONRPCError    `json:"error,omitempty"`
}

// JSONRPCError represents a JSON-RPC error.
type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// readMessage reads a JSON-RPC message from the input stream.
func (s *Server) readMessage() (*JSONRPCMessage, error) {
	// Read headers
	var contentLength int
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			break // End of headers
		}

		if strings.HasPrefix(line, "Content-Length: ") {
			lengthStr := strings.TrimPrefix(line, "Content-Length: ")
			contentLength, err = strconv.Atoi(lengthStr)
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length: %w", err)
			}
		}
	}

	if contentLength == 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}

	// Read body
	body := make([]byte, contentLength)
	_, err := io.ReadFull(s.reader, body)
	if err != nil {
		return nil, fmt.Errorf("error reading body: %w", err)
	}

	// Parse message
	var msg JSONRPCMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("error parsing message: %w", err)
	}

	return &msg, nil
}

// sendResponse sends a JSON-RPC response.
func (s *Server) sendResponse(id *json.RawMessage, result any, err *JSONRPCError) {
	msg := JSONRPCMessage{
		JSONRPC: "2.0",
		ID:      id,
	}

	if err != nil {
		msg.Error = err
	} else {
		resultBytes, _ := json.Marshal(result)
		msg.Result = resultBytes
	}

	s.writeMessage(&msg)
}

// sendNotification sends a JSON-RPC notification (no ID).
func (s *Server) sendNotification(method string, params any) {
	msg := JSONRPCMessage{
		JSONRPC: "2.0",
		Method:  method,
	}

	if params != nil {
		paramsBytes, _ := json.Marshal(params)
		msg.Params = paramsBytes
	}

	s.writeMessage(&msg)
}

// writeMessage writes a JSON-RPC message to the output stream.
func (s *Server) writeMessage(msg *JSONRPCMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	body, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("Error marshaling message", "error", err)
		return
	}

	// Header and body in one write
	frame := fmt.Appendf(nil, "Content-Length: %d\r\n\r\n", len(body))
	_, _ = s.writer.Write(append(frame, body...))
}

// handleMessage dispatches a message to the appropriate handler.
func (s *Server) handleMessage(msg *JSONRPCMessage) error {
	s.logger.Debug("Received", "method", msg.Method)

	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "initialized":
		return s.handleInitialized(msg)
	case "shutdown":
		return s.handleShutdown(msg)
	case "exit":
		return s.handleExit(msg)
	case "textDocument/didOpen":
		return s.handleDidOpen(msg)
	case "textDocument/didClose":
		return s.handleDidClose(msg)
	case "textDocument/didChange":
		return s.handleDidChange(msg)
	case "textDocument/didSave":
		return s.handleDidSave(msg)
	case "textDocument/completion":
		return s.handleCompletion(msg)
	case "textDocument/hover":
		return s.handleHover(msg)
	case "textDocument/codeAction":
		return s.handleCodeAction(msg)
	default:
		if msg.ID != nil {
			// Unknown method with ID - respond with method not found
			s.sendResponse(msg.ID, nil, &JSONRPCError{
				Code:    -32601,
				Message: "Method not found: " + msg.Method,
			})
		}
		return nil
	}
}

// --- Lifecycle handlers ---

func (s *Server) handleInitialize(msg *JSONRPCMessage) error {
	var params InitializeParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.sendResponse(msg.ID, nil, &JSONRPCError{Code: -32602, Message: err.Error()})
		return err
	}

	s.projectRoot = URIToPath(params.RootURI)
	s.logger.Info("Project root", "path", s.projectRoot)

	// Load pandalint.yaml from the project root
	s.configErr = s.loadProjectConfig()
	if s.configErr != nil {
		s.logger.Warn("Project config not loaded, using defaults", "error", s.configErr)
	}

	result := InitializeResult{
		Capabilities: ServerCapabilities{
			TextDocumentSync: &TextDocumentSyncOptions{
				OpenClose: true,
				Change:    TextDocumentSyncKindFull,
				Save: &SaveOptions{
					IncludeText: true,
				},
			},
			CompletionProvider: &CompletionOptions{
				TriggerCharacters: []string{".", "'", "\"", "{", "("},
			},
			HoverProvider: true,
			CodeActionProvider: &CodeActionOptions{
				CodeActionKinds: []CodeActionKind{CodeActionKindQuickFix},
			},
		},
		ServerInfo: &ServerInfo{Name: "pandalint"},
	}

	s.sendResponse(msg.ID, result, nil)
	return nil
}

func (s *Server) handleInitialized(_ *JSONRPCMessage) error {
	s.initialized = true
	s.logger.Info("Server initialized")

	if s.configErr != nil {
		s.sendNotification("window/showMessage", &ShowMessageParams{
			Type:    MessageTypeWarning,
			Message: "pandalint.yaml could not be loaded, using the recommended rules: " + s.configErr.Error(),
		})
	}

	s.startWatcher()
	return nil
}

func (s *Server) handleShutdown(msg *JSONRPCMessage) error {
	s.shutdownMu.Lock()
	s.shutdown = true
	s.shutdownMu.Unlock()

	s.stopWatcher()

	s.sendResponse(msg.ID, nil, nil)
	s.logger.Info("Server shutdown")
	return nil
}

func (s *Server) handleExit(_ *JSONRPCMessage) error {
	s.shutdownMu.Lock()
	s.exited = true
	s.shutdownMu.Unlock()

	s.logger.Info("Server exit")
	return nil
}

// --- Document handlers ---

func (s *Server) handleDidOpen(msg *JSONRPCMessage) error {
	var params DidOpenTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}

	s.documents.Open(params.TextDocument.URI, params.TextDocument.Text, params.TextDocument.Version)
	s.logger.Debug("Opened", "uri", params.TextDocument.URI)

	// Run diagnostics
	s.publishDiagnostics(params.TextDocument.URI)

	return nil
}

func (s *Server) handleDidClose(msg *JSONRPCMessage) error {
	var params DidCloseTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}

	s.documents.Close(params.TextDocument.URI)
	s.fixes.clearURI(params.TextDocument.URI)
	s.logger.Debug("Closed", "uri", params.TextDocument.URI)

	// Clear diagnostics
	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []Diagnostic{},
	})

	return nil
}

func (s *Server) handleDidChange(msg *JSONRPCMessage) error {
	var params DidChangeTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}

	// We use full sync, so take the last change
	if len(params.ContentChanges) > 0 {
		lastChange := params.ContentChanges[len(params.ContentChanges)-1]
		s.documents.Update(params.TextDocument.URI, lastChange.Text, params.TextDocument.Version)
	}

	// Run diagnostics
	s.publishDiagnostics(params.TextDocument.URI)

	return nil
}

func (s *Server) handleDidSave(msg *JSONRPCMessage) error {
	var params DidSaveTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}

	path := URIToPath(params.TextDocument.URI)
	s.logger.Debug("Saved", "path", path)

	base := filepath.Base(path)
	switch {
	case base == config.ConfigFileName || base == config.ConfigFileNameAlt:
		// Lint settings changed: rebuild the analyzer and re-lint
		s.reloadProjectConfig()
	case slices.Contains(design.ConfigFileNames, base):
		// The watcher sees this too; invalidating here covers unwatched files
		loader, _ := s.linter()
		loader.Invalidate(path)
		s.fixes.clearAll()
		s.publishAll()
	}

	return nil
}

// --- Helper methods ---

// linter returns the current design loader and analyzer.
func (s *Server) linter() (*design.Loader, *lint.Analyzer) {
	s.lintMu.RLock()
	defer s.lintMu.RUnlock()
	return s.loader, s.analyzer
}

// loadProjectConfig builds the design loader and analyzer from the
// project's pandalint.yaml. On error the recommended preset and design
// config discovery are used.
func (s *Server) loadProjectConfig() error {
	pc := &config.ProjectConfig{}
	pc.ApplyDefaults()

	var loadErr error
	if s.projectRoot != "" {
		loaded, err := config.LoadFromDir(s.projectRoot)
		if err != nil {
			loadErr = err
		} else {
			pc = loaded
		}
	}

	lintCfg, err := config.BuildLintConfig(pc.Preset, pc.Lint)
	if err != nil {
		loadErr = errors.Join(loadErr, err)
		lintCfg, _ = lint.Preset(lint.PresetRecommended)
	}

	opts := []design.Option{design.WithLogger(s.logger)}
	if pc.DesignConfig != "" {
		opts = append(opts, design.WithConfigPath(pc.DesignConfig))
	}

	s.lintMu.Lock()
	s.loader = design.NewLoader(opts...)
	s.analyzer = lint.NewAnalyzer(lintCfg)
	s.lintMu.Unlock()

	return loadErr
}

// reloadProjectConfig re-reads pandalint.yaml and re-lints open documents.
func (s *Server) reloadProjectConfig() {
	if err := s.loadProjectConfig(); err != nil {
		s.logger.Warn("Project config reload failed", "error", err)
		s.sendNotification("window/showMessage", &ShowMessageParams{
			Type:    MessageTypeWarning,
			Message: "pandalint.yaml could not be loaded: " + err.Error(),
		})
	}
	if s.initialized {
		s.startWatcher()
	}
	s.fixes.clearAll()
	s.publishAll()
}

// startWatcher (re)starts the design config watcher for the current
// loader. Without a watcher, config changes are only seen on save.
func (s *Server) startWatcher() {
	s.stopWatcher()

	loader, _ := s.linter()
	w, err := design.NewWatcher(loader, s.logger, s.onDesignConfigChange)
	if err != nil {
		s.logger.Warn("Design config watcher unavailable", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.watchMu.Lock()
	s.watcher = w
	s.watchCancel = cancel
	s.watchMu.Unlock()

	go func() {
		if err := w.Run(ctx); err != nil {
			s.logger.Warn("Design config watcher stopped", "error", err)
		}
	}()

	// Contexts loaded before the watcher started
	for _, path := range loader.Cached() {
		s.watchConfig(path)
	}
}

func (s *Server) stopWatcher() {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	if s.watchCancel != nil {
		s.watchCancel()
		s.watchCancel = nil
	}
	if s.watcher != nil {
		_ = s.watcher.Close()
		s.watcher = nil
	}
}

// watchConfig adds a design config file to the watcher.
func (s *Server) watchConfig(path string) {
	if path == "" {
		return
	}
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	if s.watcher == nil {
		return
	}
	if err := s.watcher.Add(path); err != nil {
		s.logger.Debug("Cannot watch design config", "path", path, "error", err)
	}
}

// onDesignConfigChange re-lints open documents after the watcher
// invalidated a design config.
func (s *Server) onDesignConfigChange(path string) {
	s.logger.Info("Design config changed, re-linting open documents", "path", path)
	s.fixes.clearAll()
	s.publishAll()
}
