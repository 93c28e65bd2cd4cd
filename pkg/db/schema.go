package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

-- Runs table: one row per completed analysis. Stores the report summary
-- only, never the full word table.
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    file_name TEXT NOT NULL,
    analyzed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    char_count INTEGER NOT NULL,
    word_count INTEGER NOT NULL,
    line_count INTEGER NOT NULL,
    distinct_words INTEGER NOT NULL,
    language TEXT,

    -- Top words as a JSON object: {"word1": count1, "word2": count2, ...}
    top_words TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_file ON runs(file_name);
CREATE INDEX IF NOT EXISTS idx_runs_analyzed ON runs(analyzed_at DESC);
`
