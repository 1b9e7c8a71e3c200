// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package config manages configuration parsing and validation for genuuid.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |   HCL   | |   JSON    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Loads .genuuid.{yaml,yml,hcl,json} by extension
- Validates quote, case, type declarations and file rules
- Builds the uti.Registry and identifier.Policy the command runs with

📝 Defaults:
A missing file is not an error. Without one, identifiers are upper case and
source code and playgrounds get double quotes. An empty quote means the
default quote; to write every identifier bare, set quoted_types to an empty
list.

🔍 Example (.genuuid.hcl):

	quote        = "'"
	case         = "lower"
	quoted_types = [uti.source_code, "com.example.query"]

	type "com.example.sql" {
	  conforms_to = ["com.example.query"]
	  extensions  = ["sql"]
	}

	file {
	  pattern = "fixtures/*"
	  type    = "public.plain-text"
	}
*/
package config
