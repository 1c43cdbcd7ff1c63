// Package mcpsrv exposes the preset codec and the MIDI transport as MCP
// tools over stdio.
package mcpsrv

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"gitlab.com/gomidi/midi/v2/drivers"

	"pc1600ctl/internal/device"
	"pc1600ctl/internal/docfile"
	"pc1600ctl/internal/preset"
	"pc1600ctl/internal/sysex"
)

// Options wires the server. Dev and In may be nil; the codec tools keep
// working without hardware and the device tools report the absence.
type Options struct {
	Dev     *device.PC1600
	In      drivers.In
	Timeout time.Duration
	Log     zerolog.Logger
}

// Serve runs the MCP server on stdio until the client disconnects.
func Serve(opts Options) error {
	s := server.NewMCPServer(
		"PC1600 MCP",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	schemaTool := mcp.NewTool("pc1600_describe-schema",
		mcp.WithDescription("Returns the parameter table of the PC1600 preset document: name, position, width and valid range of every parameter."),
	)
	s.AddTool(schemaTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts.Log.Debug().Msg("[mcp] describing schema")
		return mcp.NewToolResultText(describeSchema()), nil
	})

	decodeTool := mcp.NewTool("pc1600_decode-dump",
		mcp.WithDescription("Decodes a PC1600 sysex preset dump into its JSON document form."),
		mcp.WithString("dump-hex", mcp.Required(), mcp.Description("The raw sysex dump as a hex string, F0...F7.")),
	)
	s.AddTool(decodeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dumpHex, err := request.RequireString("dump-hex")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		raw, err := decodeHex(dumpHex)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, err := preset.FromSysex(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		asJSON, err := docfile.Marshal(doc)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(asJSON)), nil
	})

	encodeTool := mcp.NewTool("pc1600_encode-dump",
		mcp.WithDescription("Encodes a JSON preset document into a PC1600 sysex dump, returned as a hex string."),
		mcp.WithString("document-json", mcp.Required(), mcp.Description("The preset document in JSON form, as produced by pc1600_decode-dump.")),
	)
	s.AddTool(encodeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		docJSON, err := request.RequireString("document-json")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		doc, err := docfile.Unmarshal([]byte(docJSON))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		raw, err := preset.ToSysex(doc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(hex.EncodeToString(raw)), nil
	})

	getTool := mcp.NewTool("pc1600_get-preset",
		mcp.WithDescription("Pulls the edit buffer from the connected PC1600 and returns it as a JSON document."),
	)
	s.AddTool(getTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if opts.Dev == nil {
			return mcp.NewToolResultError("no PC1600 connected"), nil
		}
		opts.Log.Debug().Msg("[mcp] handling get preset request")
		raw, err := opts.Dev.RequestDump(opts.In, opts.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to read preset: %w", err)
		}
		doc, err := preset.FromSysex(raw)
		if err != nil {
			return nil, err
		}
		asJSON, err := docfile.Marshal(doc)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(asJSON)), nil
	})

	sendTool := mcp.NewTool("pc1600_send-preset",
		mcp.WithDescription("Encodes a JSON preset document and sends it to the connected PC1600's edit buffer."),
		mcp.WithString("document-json", mcp.Required(), mcp.Description("The preset document in JSON form.")),
	)
	s.AddTool(sendTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if opts.Dev == nil {
			return mcp.NewToolResultError("no PC1600 connected"), nil
		}
		docJSON, err := request.RequireString("document-json")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts.Log.Debug().Msg("[mcp] handling send preset request")
		doc, err := docfile.Unmarshal([]byte(docJSON))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		raw, err := preset.ToSysex(doc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := opts.Dev.SendDump(raw); err != nil {
			return nil, fmt.Errorf("failed to send preset: %w", err)
		}
		return mcp.NewToolResultText("Preset sent successfully."), nil
	})

	opts.Log.Info().Msg("starting PC1600 MCP server")
	return server.ServeStdio(s)
}

func decodeHex(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\t', '\r':
			return -1
		}
		return r
	}, s)
	raw, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("dump-hex is not valid hex: %w", err)
	}
	return raw, nil
}

// describeSchema renders the static parameter table.
func describeSchema() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PC1600 preset parameters (%d-byte image)\n\n", sysex.UnpackedLen)
	for _, f := range preset.Schema {
		if f.Kind == preset.KindReserved {
			continue
		}
		byteOff, bitOff := f.Offset/8, f.Offset%8
		if f.Kind == preset.KindASCII {
			fmt.Fprintf(&b, "%-18s bytes %d-%d, ASCII, up to %d printable characters\n",
				f.Name, byteOff, byteOff+f.Count-1, f.Count)
			continue
		}
		fmt.Fprintf(&b, "%-18s byte %d", f.Name, byteOff)
		if f.Width == 4 {
			if bitOff == 0 {
				b.WriteString(" (high nibble)")
			} else {
				b.WriteString(" (low nibble)")
			}
		} else if f.Width == 16 {
			fmt.Fprintf(&b, "-%d", byteOff+1)
		}
		fmt.Fprintf(&b, ", range %d-%d", f.Min, f.Max)
		if len(f.Labels) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(f.Labels, ", "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
