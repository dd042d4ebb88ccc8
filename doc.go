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

/*
Package sqleval 是一个SQL表达式求值内核，提供值类型体系、类型转换、运算符以及
常量折叠与按行求值两条求值路径。

表达式树由上游的SQL解析器构建（或使用expr包中的构造函数），sqleval负责在求值时
保持SQL语义：溢出检查、显式窄化转换的范围检查、三值逻辑以及LIKE/ILIKE匹配。

# 核心特性

• 封闭的值类型体系 - 有符号/无符号8到128位整数、浮点、DECIMAL、文本、时间、MAP、LIST、UUID等
• 任意精度字面量 - 数字字面量在绑定到目标类型之前不损失精度
• 双路径求值 - 字面量走折叠路径，行数据走执行路径，两条路径语义一致
• 类型转换 - 所有窄化转换都做范围检查，绝不回绕
• 运算符 - 一元负号、正号、按位取反、阶乘、NOT，以及算术、比较、逻辑和拼接
• 文本条件 - 基于expr-lang的条件表达式，注册了同样语义的SQL函数

# 入门示例

	package main

	import (
		"fmt"

		"github.com/rulego/sqleval"
		"github.com/rulego/sqleval/data"
		"github.com/rulego/sqleval/expr"
	)

	func main() {
		engine := sqleval.New()

		// 常量部分在Prepare时折叠，错误（如 1000!）在这里就会返回
		prepared, err := engine.Prepare(expr.Binary(
			expr.Col("level"), data.OpMultiply, expr.Fact(expr.Num("4"))))
		if err != nil {
			panic(err)
		}

		v, err := prepared.EvaluateMap(map[string]interface{}{"level": 2})
		fmt.Println(v, err) // I128(48) <nil>
	}

# 错误处理

所有语义错误都会返回，不会被记录后吞掉。错误可以用errors.Is匹配data.ErrorKind：

	_, err := engine.Evaluate(expr.Fact(expr.Num("-5")), nil)
	if errors.Is(err, data.FactorialOnNegativeNumeric) {
		// ...
	}

折叠路径返回*data.LiteralError，执行路径返回*data.ValueError，
data.KindOf可以从任意一种中取出错误种类。

# 日志

Engine只在准备阶段记录日志（常量折叠为DEBUG，折叠失败为WARN），从不按行记录：

	engine := sqleval.New(sqleval.WithLogLevel(logger.DEBUG))
	engine := sqleval.New(sqleval.WithDiscardLog())
*/
package sqleval
