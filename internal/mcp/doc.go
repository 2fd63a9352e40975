// Package mcp exposes the Trello remote operation client as Model Context
// Protocol tools using the mcp-go library.
//
// The server speaks MCP's Streamable HTTP transport behind a small gin
// router that also serves a health check and an info page. Tenant
// credentials arrive on every request in the X-Trello-API-Key and
// X-Trello-Token headers; a middleware rejects requests missing either
// header, and an HTTP context function carries the pair into tool
// handlers, where a per-request trello.Client is constructed. No
// credential state outlives a request.
//
// Each of the ~75 registered tools declares its argument schema with
// mcp-go option builders and returns a uniform envelope: mutating tools a
// {"success": ..., "message": ..., "<entity>": ...} JSON document, read
// tools a block rendered by internal/render as raw JSON or markdown, and
// every classified failure a CallToolResult with IsError set.
package mcp
