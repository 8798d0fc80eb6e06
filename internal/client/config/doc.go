// Package config loads runtime configuration for the filekeeper CLI.
//
// Sources, lowest precedence first: built-in defaults, an optional JSON file
// given with -c or -config, then command-line flags.
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s"
//	}
package config
