// Package agent exposes the portfolio to MCP (Model Context Protocol)
// clients over stdio, so an assistant can browse the same catalog the TUI
// shows.
//
// The tools are thin wrappers around the command interpreter and the catalog:
//
//	portfolio_list     list every entity
//	portfolio_open     full details of one entity by reference designator
//	portfolio_exec     run one command-line line and return its output
//	portfolio_profile  resume and contact lines
//
// Example usage:
//
//	srv := agent.NewServer(cat, "simon-ws", version)
//	if err := srv.ServeStdio(); err != nil {
//	    log.Fatal(err)
//	}
package agent
