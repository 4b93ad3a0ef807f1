// Copyright 2024-2025 logmngr authors
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

package i18n

// chineseMessages contains all Chinese (Simplified) translations.
var chineseMessages = map[string]string{
	"banner.tagline": "对日志分区并搜索",

	"process.starting":   "[1/2] 正在将 %d 个输入文件摄取到 %s...",
	"process.completed":  "✅ 摄取完成: 读取 %d 行, 解析 %d 行, 错误 %d 行 (耗时 %v)",
	"process.incomplete": "⚠️ 错误率 %.1f%% 超过 10%%, 请检查输入格式",

	"search.starting":  "正在 %d 个分区中搜索 /%s/...",
	"search.completed": "✅ 搜索完成, 扫描了 %d 个分区 (耗时 %v)",

	"error.no_partitions_matched": "没有分区与请求的时间窗口重叠",
	"error.invalid_pattern":       "无效的正则表达式: %s",
	"error.index_load_failed":     "从 %s 加载分区索引失败: %s",
	"error.ingest_failed":         "摄取 %s 失败: %s",

	"term.success": "成功",
	"term.failed":  "失败",
}
