package cli

// Examples is the quickstart block shown in --help.
const Examples = `  # classic run: query.txt against database.txt, report in BLAST_OUTPUT.txt
  miniblast

  # explicit files, longer seeds, report on stdout
  miniblast -q query.txt -d database.txt -k 6 -c 10 -o -

  # FASTA input, JSON lines, all CPUs, progress bar
  miniblast --input-format fasta -d refs.fa.gz -q probe.fa -f jsonl -o hits.jsonl --progress

  # settings from the environment or a config file
  MINIBLAST_K=5 miniblast --config miniblast.yaml`
