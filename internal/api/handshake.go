package api

import "github.com/hashicorp/go-plugin"

// Handshake is the go-plugin handshake configuration. The magic cookie keeps
// the plugin loader from executing the backend binary outside the plugin
// protocol.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "COLORBLIND_PLUGIN",
	MagicCookieValue: "colorblind_lut_backend",
}

// BackendPluginName is the key the backend plugin is registered under.
const BackendPluginName = "backend"
