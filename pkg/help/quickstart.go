package help

const QuickstartYAML = `# wordshift Quick Start

output_formats:
  ranked: "Array of {word, current, compare, change_rate}, largest change first, top 50 (default)"
  narrative: "{scenario, keywords: [{word, delta}]}, words in reverse alphabetical order, top 10"

commands:
  default_run: |
    # current_minutes.txt vs previous_minutes.txt and last_year_minutes.txt
    wordshift run

  ad_hoc: |
    wordshift compare --current june.txt --compare may.txt --output change_june.json

  merged_history: |
    wordshift compare --current june.txt --compare "april.txt,may.txt" --output vs_spring.json

  narrative: |
    wordshift --format narrative --narrative "Policy held steady." compare --current a.txt --compare b.txt --output story.json

  word_counts: |
    wordshift freq --file current_minutes.txt --words 25

  with_manifest: |
    wordshift --manifest results/manifest.json --print run

config_file:
  yaml: |
    format: ranked
    top: 50
    domain_stopwords: true
    stopwords: [percent, basis]
    comparisons:
      - name: vs_previous
        current: [current_minutes.txt]
        compare: [previous_minutes.txt]
        output: change_vs_previous.json
  toml: "Same keys; use [[comparisons]] tables. Chosen by the .toml extension."

environment:
  - "Flags also read WORDSHIFT_* variables (e.g. WORDSHIFT_FORMAT=narrative)"
  - "A .env file in the working directory is loaded first"

change_rate:
  - "(current - compare) / compare when compare > 0"
  - "\"inf\" when the word is new (compare == 0, current > 0)"
  - "0 when the word is absent from both"

error_behavior:
  - "Missing document: message naming the path, comparison skipped, no output file"
  - "Skipped comparisons are not errors; check for the output file or the manifest"
  - "Invalid configuration or unreadable files: exit status 1"
`
