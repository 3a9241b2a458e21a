package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the single-page market report UI.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

func (h *DashboardHandler) Page(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, dashboardPage)
}

var dashboardPage = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Crypto Market Report</title>
    <style>
        body { font-family: sans-serif; margin: 20px; }
        table { border-collapse: collapse; margin-top: 10px; width: 100%; }
        th, td { border: 1px solid #aaa; padding: 5px 8px; text-align: right; }
        th { background: #f0f0f0; }
        td.text, th.text { text-align: left; }
        #updated { color: #666; font-size: 0.9em; }
        #error { color: #b00020; margin-top: 10px; display: none; }
    </style>
</head>
<body>
    <h2>&#128202; Auto Crypto Market Report (Live Prices)</h2>
    <button onclick="refresh()">&#128260; Refresh Data</button>
    <div id="updated"></div>
    <div id="error"></div>
    <table id="reportTable">
        <thead>
            <tr>
                <th>Rank</th>
                <th class="text">Sym</th>
                <th class="text">Name</th>
                <th>Live USD</th>
                <th>24h %</th>
                <th>Market Cap</th>
                <th>2026 Bull</th>
                <th>2026 Base</th>
                <th>2026 Bear</th>
            </tr>
        </thead>
        <tbody></tbody>
    </table>

<script>
function esc(s) {
    const d = document.createElement("div");
    d.textContent = s;
    return d.innerHTML;
}

function render(report) {
    document.getElementById("updated").textContent = "Last updated: " + report.last_updated;
    document.getElementById("error").style.display = "none";
    const tbody = document.querySelector("#reportTable tbody");
    tbody.innerHTML = "";
    report.rows.forEach(r => {
        const tr = document.createElement("tr");
        tr.innerHTML =
            "<td>" + r.rank + "</td>" +
            '<td class="text">' + esc(r.symbol) + "</td>" +
            '<td class="text">' + esc(r.name) + "</td>" +
            "<td>" + esc(r.price) + "</td>" +
            "<td>" + esc(r.change_24h) + "</td>" +
            "<td>" + esc(r.market_cap) + "</td>" +
            "<td>" + esc(r.scenario.bull) + "</td>" +
            "<td>" + esc(r.scenario.base) + "</td>" +
            "<td>" + esc(r.scenario.bear) + "</td>";
        tbody.appendChild(tr);
    });
}

function showError(msg) {
    const el = document.getElementById("error");
    el.textContent = msg;
    el.style.display = "block";
}

async function load(url, options) {
    try {
        const resp = await fetch(url, options);
        const body = await resp.json();
        if (!body.success) {
            showError(body.message);
            return;
        }
        render(body.data);
    } catch (e) {
        showError("Request failed: " + e);
    }
}

function refresh() {
    load("/v1/report/refresh", {method: "POST"});
}

load("/v1/report");
</script>
</body>
</html>
`
