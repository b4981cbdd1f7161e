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
Package operation implements the flatten pass.

	+-------------+     +-------------+     +-------------+
	|  Validate   | --> |    Walk     | --> |   Recount   |
	| input root  |     | (one pass)  |     | output dir  |
	+-------------+     +------+------+     +------+------+
	                           |                   |
	                    +------+------+     +------+------+
	                    | rm / COPY / |     |   Summary   |
	                    |    SKIP     |     |             |
	                    +-------------+     +-------------+

🎯 Purpose:
- Removes every file ending in the delete extension
- Copies every file ending in the copy extension into one flat directory,
  keeping the first file seen for each base name
- Counts everything else as skipped

🔄 Flow:
1. Fail with ErrInputRoot before touching anything if the input root is not a directory
2. Create the output directory
3. Walk the input tree in lexical order, one file at a time
4. Recount copy-extension entries at the top of the output directory
5. Log the summary

⚡ Notes:
- An output directory inside the input root is walked like any other
  directory. Its files hit the existence check and count as skipped.
  Exclude patterns (e.g. "all_maf_flat/**") keep it out of the pass.
- Per-file failures surface as FileError, get logged as [WARN] lines and
  are not counted.
- Rerunning is safe: copies are skipped by name, removals are already done.

🔍 Example:

	f, err := operation.New(operation.Options{
		Config: config.Default(),
		Logger: log.New(os.Stdout, zerolog.Nop()),
	})
	if err != nil {
		return err
	}
	summary, err := f.Run(ctx)
*/
package operation
