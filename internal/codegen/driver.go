package codegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Stage identifies where a generation run failed.
type Stage string

const (
	StageConnecting    Stage = "connecting"
	StageListing       Stage = "listing"
	StageWriting       Stage = "writing"
	StageDisconnecting Stage = "disconnecting"
)

// StageError reports the failing stage of a generation run alongside the
// underlying cause.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("generation failed while %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ToolSource is the slice of the transport registry the driver needs:
// connect to a named server, list its tools, and tear the connection down.
type ToolSource interface {
	Connect(ctx context.Context, serverName string) error
	ListTools(ctx context.Context, serverName string) ([]*mcp.Tool, error)
	Disconnect(serverName string) error
}

// Driver orchestrates one end-to-end generation run against one server.
type Driver struct {
	source ToolSource
	log    *zap.Logger
}

// NewDriver creates a driver over the given tool source. A nil logger
// disables logging.
func NewDriver(source ToolSource, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{source: source, log: log}
}

// Report summarizes a completed generation run.
type Report struct {
	ServerName string
	OutputDir  string
	ToolCount  int
	Files      []string
}

// Run connects to the named server, generates one binding module per tool
// plus the assembler artifacts, and writes everything under
// {outputDir}/{serverName}. The connection is torn down on every exit path.
// A connect failure produces no output; a write failure leaves whatever was
// already flushed and is reported, not retried.
func (d *Driver) Run(ctx context.Context, serverName, outputDir string) (*Report, error) {
	if err := d.source.Connect(ctx, serverName); err != nil {
		return nil, &StageError{Stage: StageConnecting, Err: err}
	}
	defer func() {
		if err := d.source.Disconnect(serverName); err != nil {
			d.log.Warn("disconnect failed", zap.String("server", serverName), zap.Error(err))
		}
	}()

	tools, err := d.source.ListTools(ctx, serverName)
	if err != nil {
		return nil, &StageError{Stage: StageListing, Err: err}
	}

	// Generating cannot fail: the type mapper is total and descriptors
	// without an input schema default to an empty object.
	modules := make([]Module, 0, len(tools))
	for _, tool := range tools {
		mod := GenerateModule(serverName, DescriptorFromTool(tool))
		d.log.Info("generated tool binding",
			zap.String("server", serverName),
			zap.String("tool", mod.ToolName),
			zap.String("function", mod.FunctionName))
		modules = append(modules, mod)
	}

	artifacts := Assemble(serverName, modules)

	report := &Report{ServerName: serverName, OutputDir: outputDir, ToolCount: len(modules)}

	serverDir := filepath.Join(outputDir, serverName)
	if err := os.MkdirAll(serverDir, 0755); err != nil {
		return nil, &StageError{Stage: StageWriting, Err: fmt.Errorf("create output directory: %w", err)}
	}

	for _, mod := range modules {
		if err := d.writeFile(serverDir, mod.FileName, mod.Source, report); err != nil {
			return nil, err
		}
	}
	if err := d.writeFile(serverDir, "index.ts", artifacts.Index, report); err != nil {
		return nil, err
	}
	if err := d.writeFile(serverDir, "types.ts", artifacts.Types, report); err != nil {
		return nil, err
	}
	if err := d.writeFile(serverDir, "README.md", artifacts.Readme, report); err != nil {
		return nil, err
	}

	d.log.Info("generation complete",
		zap.String("server", serverName),
		zap.Int("tools", report.ToolCount),
		zap.String("output", serverDir))

	return report, nil
}

func (d *Driver) writeFile(dir, name, content string, report *Report) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &StageError{Stage: StageWriting, Err: fmt.Errorf("write %s: %w", path, err)}
	}
	report.Files = append(report.Files, path)
	return nil
}
