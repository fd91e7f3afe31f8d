/*
Package patch implements the one-shot anchored patch against a single file.

	+-------------+
	|   Patcher   |
	| (Orchestra.)|
	+------+------+
	       |
	+------+------+
	|    text     |
	|  (Splice)   |
	+------+------+

🎯 Purpose:
- Reads the target file fully into memory
- Delegates marker location and splicing to the text package
- Writes the result back atomically, or not at all

🔄 Flow:
1. Validate the region rule and the file-filter glob
2. Read the target file
3. Locate both markers (first occurrence each) and splice
4. Write via temp file + rename, or abort without writing

⚡ Key Responsibilities:
- Fail-closed ordering: every error path returns before the write
- Atomic overwrite so a failed write never reports success
- Dry-run mode for inspection without mutation

📝 Design Philosophy:
The patcher is deliberately a single sequential pass with two terminal
states, patched or aborted. There are no retries, no backups and no
idempotency guarantee: a second run over a patched file is expected to
abort because the start marker was consumed by the first run.
*/
package patch
