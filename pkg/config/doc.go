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
Package config manages configuration parsing and validation for flatmaf.

	            +-------------+
	            |   Config    |
	            | (defaults)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   HCL    | |   YAML   | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Holds the two directories and two extensions a run works with
- Starts from the reference values so an empty file changes nothing
- Picks a parser by file extension

🔄 Flow:
1. Default() provides data -> data/all_maf_flat, .maf copied, .gz deleted
2. A registered Parser decodes the file on top of the defaults
3. Validate() rejects empty or clashing extensions and bad exclude globs

🔍 Example:

	cfg, err := config.Load(ctx, ".flatmaf.hcl")
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	fmt.Println(cfg) // data -> data/all_maf_flat (copy .maf, delete .gz)

A matching HCL file:

	input_root = "data"
	output_dir = "${default.input_root}/all_maf_flat"
	exclude    = ["all_maf_flat/**"]
*/
package config
