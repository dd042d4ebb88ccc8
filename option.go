/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sqleval

import (
	"io"

	"github.com/rulego/sqleval/logger"
)

// Option 表示对Engine默认行为的修改配置。
// 通过函数式选项模式，用户可以灵活地配置Engine的日志行为。
type Option func(*Engine)

// WithLogger 设置自定义日志记录器。
// 只作用于当前Engine，不修改全局默认日志记录器。
//
// 参数:
//   - log: 实现了logger.Logger接口的日志记录器
//
// 示例:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	engine := sqleval.New(WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.logger = log
		}
	}
}

// WithLogLevel 设置日志级别。
// 在所有选项应用完毕后生效，因此与WithLogger的顺序无关。
// 与WithLogger同时使用时，级别作为额外的过滤条件包装在自定义日志记录器外层，
// 不会修改其自身级别；消息需同时满足两者的级别才会输出。
//
// 参数:
//   - level: 日志级别，可选值：DEBUG, INFO, WARN, ERROR, OFF
//
// 示例:
//
//	// 查看常量折叠过程
//	engine := sqleval.New(WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(e *Engine) {
		e.level = &level
	}
}

// WithLogOutput 设置日志输出目标。
//
// 参数:
//   - output: 日志输出目标，如os.Stdout、os.Stderr或文件
//   - level: 日志级别
//
// 示例:
//
//	engine := sqleval.New(WithLogOutput(os.Stderr, logger.WARN))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(e *Engine) {
		e.logger = logger.NewComponentLogger(componentName, level, output)
	}
}

// WithDiscardLog 禁用所有日志输出。
//
// 示例:
//
//	engine := sqleval.New(WithDiscardLog())
func WithDiscardLog() Option {
	return func(e *Engine) {
		e.logger = logger.NewDiscardLogger()
	}
}
