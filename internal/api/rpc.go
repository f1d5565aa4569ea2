package api

import (
	"context"
	"net/rpc"

	"github.com/hashicorp/go-plugin"

	"github.com/jfrconley/decky-colorblind/internal/config"
)

// Backend is the interface the frontend consumes over RPC.
type Backend interface {
	ReadConfiguration(scope string) Result
	UpdateConfiguration(cfg config.CorrectionConfig, scope string) Result
	ApplyConfiguration(scope string) Result
}

// Request types for the RPC methods. Scope is either empty (global) or an
// application identifier.

type ReadRequest struct {
	Scope string
}

type UpdateRequest struct {
	Scope  string
	Config config.CorrectionConfig
}

type ApplyRequest struct {
	Scope string
}

// BackendPlugin implements the go-plugin Plugin interface for the backend
// service.
type BackendPlugin struct {
	plugin.Plugin
	Impl *Service
}

// Server returns an RPC server wrapping the service implementation.
func (p *BackendPlugin) Server(*plugin.MuxBroker) (interface{}, error) {
	return &BackendRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for the host side.
func (p *BackendPlugin) Client(b *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &BackendRPCClient{client: c}, nil
}

// BackendRPCServer is the plugin-side RPC server.
type BackendRPCServer struct {
	Impl *Service
}

func (s *BackendRPCServer) ReadConfiguration(req ReadRequest, resp *Result) error {
	*resp = s.Impl.ReadConfiguration(req.Scope)
	return nil
}

func (s *BackendRPCServer) UpdateConfiguration(req UpdateRequest, resp *Result) error {
	*resp = s.Impl.UpdateConfiguration(req.Config, req.Scope)
	return nil
}

func (s *BackendRPCServer) ApplyConfiguration(req ApplyRequest, resp *Result) error {
	*resp = s.Impl.ApplyConfiguration(context.Background(), req.Scope)
	return nil
}

// BackendRPCClient is the host-side RPC client implementing Backend.
type BackendRPCClient struct {
	client *rpc.Client
}

func (c *BackendRPCClient) ReadConfiguration(scope string) Result {
	var resp Result
	if err := c.client.Call("Plugin.ReadConfiguration", ReadRequest{Scope: scope}, &resp); err != nil {
		return Result{OK: false, Error: err.Error()}
	}
	return resp
}

func (c *BackendRPCClient) UpdateConfiguration(cfg config.CorrectionConfig, scope string) Result {
	var resp Result
	if err := c.client.Call("Plugin.UpdateConfiguration", UpdateRequest{Scope: scope, Config: cfg}, &resp); err != nil {
		return Result{OK: false, Error: err.Error()}
	}
	return resp
}

func (c *BackendRPCClient) ApplyConfiguration(scope string) Result {
	var resp Result
	if err := c.client.Call("Plugin.ApplyConfiguration", ApplyRequest{Scope: scope}, &resp); err != nil {
		return Result{OK: false, Error: err.Error()}
	}
	return resp
}
