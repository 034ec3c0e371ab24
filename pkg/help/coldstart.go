package help

const ColdstartYAML = `# sentence-robot Quick Start

pipeline:
  - "fetch: article text for the search term (wikipedia, algorithmia or html)"
  - "sanitize: drop blank lines, =Heading= lines and parentheticals"
  - "segment: Punkt sentence boundaries, model picked by detected language"
  - "truncate: keep the first --max-sentences sentences"
  - "enrich: keywords per sentence (watson or local)"

commands:
  run_offline: |
    sentence-robot run --term "Honey bee" --provider local

  run_watson: |
    export WATSON_NLU_APIKEY=...
    export WATSON_NLU_URL=https://api.us-south.natural-language-understanding.watson.cloud.ibm.com/instances/...
    sentence-robot run --term "Honey bee" --max-sentences 5

  run_portuguese: |
    sentence-robot run --term "Abelha" --language pt --provider local --format yaml

  sanitize_file: |
    sentence-robot sanitize --input article.txt --max-sentences 3

  sanitize_stdin: |
    curl -s "https://en.wikipedia.org/w/api.php?action=query&prop=extracts&explaintext=1&format=json&formatversion=2&titles=Bee" \
      | jq -r '.query.pages[0].extract' | sentence-robot sanitize --format json

config:
  file: "config.yaml (or --config FILE); .env, .env.local and ENV_FILE are loaded first"
  precedence: "flags > environment > config file > defaults"
  env:
    RETRIEVAL_SOURCE: "wikipedia | algorithmia | html"
    RETRIEVAL_LANGUAGE: "BCP 47 tag, e.g. en, pt-BR"
    ALGORITHMIA_API_KEY: "required for the algorithmia source"
    ANALYSIS_PROVIDER: "watson | local"
    WATSON_NLU_APIKEY: "required for watson"
    WATSON_NLU_URL: "required for watson"
    ANALYSIS_RPS: "client-side request limit for watson"
    PIPELINE_WORKERS: "sentences analyzed at once (1 = sequential)"

output:
  - "run: JSON (default) or YAML with status, stats and content"
  - "sanitize: one sentence per line (default), JSON or YAML"
  - "logs: JSON on stderr; --quiet for errors only, --verbose for debug"

error_behavior:
  - "Any fetch or analysis error aborts the run; nothing is retried"
  - "Exit codes: 0=success, 1=run failed, 2=invalid configuration"
`
