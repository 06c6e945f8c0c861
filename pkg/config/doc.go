/*
Package config manages configuration parsing and validation for eodl.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+-----------+
	      |                       |           |
	+-----+-----+           +----+----+  +---+----+
	|   YAML    |           |   HCL   |  |  JSON  |
	| Parser    |           | Parser  |  | Parser |
	+-----------+           +---------+  +--------+

🎯 Purpose:
- Loads catalog credentials and endpoint settings
- Validates configuration values and fills in defaults
- Resolves credentials from the environment when absent
- Supports multiple config formats

🔄 Flow:
1. Reads configuration from file
2. Parses format-specific syntax
3. Validates values and applies defaults
4. Provides validated config to the operation pipeline

⚡ Key Responsibilities:
- Credential resolution (file first, then EODMS_USER / EODMS_PASSWORD)
- Directory defaults for downloads and results
- Timeout and page size defaults
- Format abstraction via the Parser registry

🤝 Interfaces:
- Parser: Format-specific parsing
- Config: Type-safe config access

📝 Design Philosophy:
The config package is the source of truth for all configuration. It:
- Provides a clean interface for config access
- Ensures type safety and validation
- Abstracts away format-specific details
- Makes configuration errors clear and actionable
*/
package config
