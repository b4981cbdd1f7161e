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
Package status tracks and formats the per-file outcomes of a flatten run.

🎯 Purpose:
- Names every disposition a visited file can get (Action)
- Keeps the copied/removed/skipped tallies (Counters)
- Renders action messages and the end-of-run summary (Formatter)

Skips are one tally: "already exists" and "matched nothing" both land in
Counters.Skipped, even though only the first prints a console line.
Failures never count.
*/
package status
