// Command mural-api runs the in-memory posts API from internal/devserver for
// local development against the mural CLI.
//
//	mural-api --addr :8000 --like-response message --seed "olá" --seed "tudo bem?"
//
// Point the CLI at it with MURAL_API_BASE=http://127.0.0.1:8000/.
package main
