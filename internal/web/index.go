package web

// indexHTML is the dashboard entry page: pick a subreddit, run the pipeline,
// generate and open the report.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Reddit ETL Dashboard</title>
<style>
    body { font-family: Arial, sans-serif; max-width: 720px; margin: 40px auto; color: #333; }
    h1 { text-align: center; }
    select, button { font-size: 14px; padding: 10px 16px; margin: 6px; }
    button { background-color: #0066cc; color: white; border: none; border-radius: 5px; cursor: pointer; }
    button:hover { background-color: #0044aa; }
    button:disabled { background-color: #999; cursor: wait; }
    #status { margin: 16px 6px; min-height: 1.2em; }
    .error { color: #b00020; }
</style>
</head>
<body>
<h1>Reddit ETL Dashboard</h1>
<div>
    <select id="subreddit"><option>Loading subreddits...</option></select>
    <button id="run-etl">Fetch Top Posts</button>
    <button id="run-report">Generate Report</button>
    <a href="/interactive_report.html"><button>View Report</button></a>
</div>
<div id="status"></div>
<script>
const sel = document.getElementById('subreddit');
const status = document.getElementById('status');

function setStatus(msg, isError) {
    status.textContent = msg;
    status.className = isError ? 'error' : '';
}

fetch('/get-subreddits')
    .then(r => r.json())
    .then(subs => {
        sel.innerHTML = '';
        subs.forEach(s => {
            const o = document.createElement('option');
            o.value = s.name;
            o.dataset.title = s.title;
            o.textContent = s.name + ' (' + s.subscribers.toLocaleString() + ' subscribers)';
            sel.appendChild(o);
        });
    })
    .catch(() => setStatus('Could not load subreddit list', true));

document.getElementById('run-etl').onclick = function () {
    const opt = sel.selectedOptions[0];
    this.disabled = true;
    setStatus('Fetching posts for ' + opt.value + '...');
    fetch('/run-etl', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({subreddit: opt.value, title: opt.dataset.title || ''})
    })
        .then(r => r.json())
        .then(d => setStatus(d.status === 'success' ? 'ETL completed' : d.error, d.status !== 'success'))
        .catch(e => setStatus(String(e), true))
        .finally(() => { this.disabled = false; });
};

document.getElementById('run-report').onclick = function () {
    this.disabled = true;
    setStatus('Generating report...');
    fetch('/run-report', {method: 'POST'})
        .then(r => r.json())
        .then(d => setStatus(d.status === 'success' ? 'Report ready' : d.error, d.status !== 'success'))
        .catch(e => setStatus(String(e), true))
        .finally(() => { this.disabled = false; });
};
</script>
</body>
</html>
`
